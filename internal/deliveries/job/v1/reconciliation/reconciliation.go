package reconciliation

import (
	"context"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/flag"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/services"
)

type reconciliationHandler struct {
	schedulerSrv services.SchedulerService
}

func Routes(ss services.SchedulerService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := reconciliationHandler{
		schedulerSrv: ss,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ReconcileDueAccounts": handler.ReconcileDueAccounts,
		// add more job here
	}
}

// ReconcileDueAccounts reconciles every active account that is due as of date.
// Accounts left unbalanced are reported, not failed; the job fails only when an account errored.
func (rh *reconciliationHandler) ReconcileDueAccounts(ctx context.Context, date time.Time, flag flag.Job) error {
	res, err := rh.schedulerSrv.ReconcileDueAccounts(ctx, date)

	log.Info(ctx, "ReconcileDueAccounts",
		log.Int("due", res.Due),
		log.Int("completed", res.Completed),
		log.Int("unbalanced", res.Unbalanced),
		log.Int("skipped", res.Skipped),
		log.Int("failed", res.Failed),
	)

	return err
}
