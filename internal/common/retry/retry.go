package retry

import (
	"context"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/config"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation, fallback func() error) error
	RetryIf(ctx context.Context, operation func() error, retryable func(error) bool) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implement exponential backoff mechanism.

Example:

RetryIf(ctx, func() error { return svc.CompleteReconciliation(ctx, id) }, IsConcurrentModification)
*/
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = backoff.DefaultInitialInterval
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

func (r *exponentialBackoff) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	return backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx)
}

/*
Retry will create ExponentialBackOff instance for every execution.

"operation" is retried until it succeeds, returns StopRetryWithErr or the retries are exhausted;
then "fallback" is called and its error is returned.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation, fallback func() error) error {
	err := backoff.Retry(operation, r.newBackOff(ctx))
	if err != nil {
		log.Debugf(ctx, "retry exhausted with err: %v", err)
		if fallback == nil {
			return err
		}
		return fallback()
	}

	return nil
}

// RetryIf retries operation only while retryable reports its error as transient, and returns the
// last error otherwise. The operation is always re-run as a whole.
func (r *exponentialBackoff) RetryIf(ctx context.Context, operation func() error, retryable func(error) bool) error {
	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := operation()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		log.Warn(ctx, "[RETRY] transient error, retrying",
			log.Int("attempt", attempt),
			log.Err(err))
		return err
	}, r.newBackOff(ctx))
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
