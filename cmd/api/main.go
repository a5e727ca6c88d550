package main

import (
	"context"
	"time"

	"github.com/trustbooks/go-trust-ledger/cmd/setup"
	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		_ = graceful.StopProcess(timeout, stopperContract...)

		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic, s.RepoCache, s.Service)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, httpServer.Stop())

	graceful.StartProcessAtBackground(starters...)
	if err := graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...); err != nil {
		log.Errorf(ctx, "failed to stop gracefully: %v", err)
	}

	log.Info(ctx, "http server stopped!")
}
