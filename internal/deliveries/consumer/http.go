package consumer

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/deliveries/http/health"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// healthServer exposes liveness and prometheus metrics for a running consumer.
type healthServer struct {
	e    *echo.Echo
	addr string
}

var _ graceful.ProcessStartStopper = (*healthServer)(nil)

func NewHTTPServer(conf config.Config) graceful.ProcessStartStopper {
	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echomiddleware.Recover())

	app.GET("/metrics", echoprometheus.NewHandler())
	health.New(app.Group("/api"))

	return &healthServer{
		e:    app,
		addr: fmt.Sprintf(":%d", conf.MessageBroker.HTTPPort),
	}
}

func (s *healthServer) Start() graceful.ProcessStarter {
	return func() error {
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *healthServer) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		if err := s.e.Shutdown(ctx); err != nil {
			log.Errorf(ctx, "[SHUTDOWN] consumer health server error: %v", err)
			return err
		}
		return nil
	}
}
