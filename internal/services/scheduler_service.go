package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

const (
	defaultReconciliationPeriodDays = 30
	defaultSchedulerConcurrency     = 1
)

type SchedulerService interface {
	// ReconcileDueAccounts reconciles every active account whose last reconciliation is older than
	// the configured period, up to asOf. Accounts run in parallel, bounded by the configured concurrency.
	ReconcileDueAccounts(ctx context.Context, asOf time.Time) (res models.ReconciliationSweepResult, err error)
	// ReconcileAccount handles one deferred reconciliation request.
	ReconcileAccount(ctx context.Context, msg models.ReconciliationRequestMessage) (out *models.Reconciliation, err error)
}

type scheduler service

var _ SchedulerService = (*scheduler)(nil)

func (ss *scheduler) ReconcileDueAccounts(ctx context.Context, asOf time.Time) (res models.ReconciliationSweepResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	periodDays := ss.srv.conf.Scheduler.ReconciliationPeriodDays
	if periodDays <= 0 {
		periodDays = defaultReconciliationPeriodDays
	}
	concurrency := ss.srv.conf.Scheduler.Concurrency
	if concurrency <= 0 {
		concurrency = defaultSchedulerConcurrency
	}

	periodEnd := common.TruncateToDate(asOf.UTC())
	cutoff := periodEnd.AddDate(0, 0, -periodDays)

	accounts, err := ss.srv.sqlRepo.GetTrustAccountRepository().ListDueForReconciliation(ctx, cutoff)
	if err != nil {
		return res, err
	}
	res.Due = len(accounts)

	var (
		mu   sync.Mutex
		errs *multierror.Error
	)
	var group errgroup.Group
	group.SetLimit(concurrency)

	started := 0
	for _, account := range accounts {
		if ctx.Err() != nil {
			break
		}
		started++
		group.Go(func() error {
			outcome, accErr := ss.reconcileDue(ctx, account, periodEnd)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case sweepCompleted:
				res.Completed++
			case sweepUnbalanced:
				res.Unbalanced++
			case sweepSkipped:
				res.Skipped++
			default:
				res.Failed++
				errs = multierror.Append(errs, fmt.Errorf("trust account %s: %w", account.ID, accErr))
			}
			// one account failing never stops the others
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if notStarted := len(accounts) - started; notStarted > 0 {
		res.Failed += notStarted
		errs = multierror.Append(errs, fmt.Errorf("sweep stopped before %d trust accounts: %w", notStarted, context.Cause(ctx)))
	}

	log.Info(ctx, constants.LogPrefixReconciliation,
		log.String("status", "sweep finished"),
		log.Time("periodEnd", periodEnd),
		log.Int("due", res.Due),
		log.Int("completed", res.Completed),
		log.Int("unbalanced", res.Unbalanced),
		log.Int("skipped", res.Skipped),
		log.Int("failed", res.Failed))

	return res, errs.ErrorOrNil()
}

type sweepOutcome int

const (
	sweepFailed sweepOutcome = iota
	sweepCompleted
	sweepUnbalanced
	sweepSkipped
)

func (ss *scheduler) reconcileDue(ctx context.Context, account models.TrustAccount, periodEnd time.Time) (sweepOutcome, error) {
	periodStart := common.TruncateToDate(account.CreatedAt.UTC())
	if account.LastReconciledDate != nil {
		periodStart = common.TruncateToDate(account.LastReconciledDate.UTC()).AddDate(0, 0, 1)
	}
	if periodStart.After(periodEnd) {
		return sweepSkipped, nil
	}

	if _, err := ss.srv.sqlRepo.GetReconciliationRepository().GetInProgress(ctx, account.ID); err == nil {
		// an operator owns the open reconciliation
		return sweepSkipped, nil
	} else if !errors.Is(err, common.ErrReconciliationNotFound) {
		return sweepFailed, err
	}

	statement, err := ss.srv.bankStatement.GetClosingBalance(ctx, account.BankAccountRef, periodEnd)
	if err != nil {
		return sweepFailed, err
	}

	_, err = ss.reconcile(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		BankBalance:    statement.Balance,
	})
	switch {
	case err == nil:
		return sweepCompleted, nil
	case errors.Is(err, common.ErrUnbalancedReconciliation):
		log.Warn(ctx, constants.LogPrefixReconciliation,
			log.String("status", "left in progress for operator correction"),
			log.String("trustAccountId", account.ID),
			log.Err(err))
		return sweepUnbalanced, nil
	}

	return sweepFailed, err
}

func (ss *scheduler) ReconcileAccount(ctx context.Context, msg models.ReconciliationRequestMessage) (out *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	periodStart, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, msg.PeriodStart)
	if err != nil {
		return nil, err
	}
	periodEnd, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, msg.PeriodEnd)
	if err != nil {
		return nil, err
	}

	account, err := ss.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, msg.TrustAccountID)
	if err != nil {
		return nil, err
	}

	var bankBalance models.Decimal
	if msg.BankBalance != nil {
		bankBalance = *msg.BankBalance
	} else {
		statement, err := ss.srv.bankStatement.GetClosingBalance(ctx, account.BankAccountRef, periodEnd)
		if err != nil {
			return nil, err
		}
		bankBalance = statement.Balance
	}

	return ss.reconcile(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		BankBalance:    bankBalance,
	})
}

// reconcile starts a reconciliation and tries to complete it. A serialization conflict retries
// the remaining work as a whole; a run that already started is never started twice.
func (ss *scheduler) reconcile(ctx context.Context, in models.StartReconciliationIn) (out *models.Reconciliation, err error) {
	var started *models.Reconciliation
	err = ss.srv.retryer.RetryIf(ctx, func() error {
		if started == nil {
			rec, err := ss.srv.Reconciliation.Start(ctx, in)
			if err != nil {
				return err
			}
			started = rec
		}

		rec, err := ss.srv.Reconciliation.Complete(ctx, started.ID)
		if err != nil {
			return err
		}
		out = rec
		return nil
	}, IsRetryable)
	if err != nil {
		return started, err
	}

	return out, nil
}
