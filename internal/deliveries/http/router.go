package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	commonhttp "github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/http/middleware"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/deliveries/http/health"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	v1approval "github.com/trustbooks/go-trust-ledger/internal/deliveries/http/v1/approval"
	v1checkRun "github.com/trustbooks/go-trust-ledger/internal/deliveries/http/v1/check_run"
	v1reconciliation "github.com/trustbooks/go-trust-ledger/internal/deliveries/http/v1/reconciliation"
	v1transaction "github.com/trustbooks/go-trust-ledger/internal/deliveries/http/v1/transaction"
	v1trustAccount "github.com/trustbooks/go-trust-ledger/internal/deliveries/http/v1/trust_account"
	v1vendorBill "github.com/trustbooks/go-trust-ledger/internal/deliveries/http/v1/vendor_bill"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	echoSwagger "github.com/swaggo/echo-swagger"

	// for swagger docs
	_ "github.com/trustbooks/go-trust-ledger/docs"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		if err := s.e.Start(s.addr); err != nil && err != nethttp.ErrServerClosed {
			return err
		}
		return nil
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// @title GO TRUST LEDGER API DOCUMENTATION
// @version 1.0
// @description Trust accounting ledger: client ledgers, postings, three-way reconciliation, approvals and check runs.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	cacheRepo repositories.CacheRepository,
	srv *services.Services,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// swagger
	app.GET("/swagger/*", echoSwagger.WrapHandler)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth())
	// v1Group register api
	v1trustAccount.New(v1Group, srv.TrustAccount)
	v1transaction.New(v1Group, srv.Transaction, m)
	v1reconciliation.New(v1Group, srv.Reconciliation)
	v1approval.New(v1Group, srv.Approval)
	v1vendorBill.New(v1Group, srv.VendorBill)
	v1checkRun.New(v1Group, srv.CheckRun, m)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	log.Info(ctx, "[HTTP] routes registered", log.Int("count", len(app.Routes())))

	return svc
}
