package graceful

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p != nil {
			go func(_p func() error) {
				if err := _p(); err != nil {
					log.Error(context.Background(), "[GRACEFUL] process stopped with error", log.Err(err))
				}
			}(p)
		}
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1, then stops ps in reverse order.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(signals)

	sig := <-signals
	log.Info(context.Background(), "[GRACEFUL] shutting down", log.String("signal", sig.String()))

	return StopProcess(duration, ps...)
}

// StopProcess runs every stopper, last registered first, each bounded by duration, and joins their errors.
func StopProcess(duration time.Duration, ps ...ProcessStopper) error {
	stoppers := slices.Clone(ps)
	slices.Reverse(stoppers)

	var errs []error
	for _, p := range stoppers {
		if p == nil {
			continue
		}
		func() {
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			if err := p(ctx); err != nil {
				errs = append(errs, err)
			}
		}()
	}
	return errors.Join(errs...)
}
