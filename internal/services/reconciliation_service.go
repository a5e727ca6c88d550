package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

const (
	reconciliationResultCompleted  = "completed"
	reconciliationResultUnbalanced = "unbalanced"
	reconciliationResultCorrupted  = "corrupted"
)

type ReconciliationService interface {
	Start(ctx context.Context, in models.StartReconciliationIn) (out *models.Reconciliation, err error)
	GetByID(ctx context.Context, id string) (out *models.Reconciliation, err error)
	List(ctx context.Context, trustAccountID string) (out []models.Reconciliation, err error)
	// UpdateBankBalance corrects the bank figure of a reconciliation still in progress.
	UpdateBankBalance(ctx context.Context, id string, bankBalance models.Decimal) (out *models.Reconciliation, err error)
	// Complete closes a balanced reconciliation. An unbalanced one stays in progress and returns
	// common.ErrUnbalancedReconciliation; a broken book invariant fails it with common.ErrLedgerCorruption.
	Complete(ctx context.Context, id string) (out *models.Reconciliation, err error)
}

type reconciliation service

var _ ReconciliationService = (*reconciliation)(nil)

func (rs *reconciliation) Start(ctx context.Context, in models.StartReconciliationIn) (out *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if in.PeriodStart.After(in.PeriodEnd) {
		return nil, common.ErrInvalidPeriod
	}
	if !in.BankBalance.HasMinorUnitPrecision() {
		return nil, common.ErrInvalidAmountPrecision
	}

	err = rs.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		// the account lock keeps postings out while the book side is read
		account, err := r.GetTrustAccountRepository().GetByIDForUpdate(actx, in.TrustAccountID)
		if err != nil {
			return err
		}

		snap, err := rs.snapshot(actx, r, account, in.PeriodEnd)
		if err != nil {
			return err
		}

		rec := &models.Reconciliation{
			ID:             rs.srv.idgenerator.Generate(idgenerator.PrefixReconciliation),
			TrustAccountID: account.ID,
			PeriodStart:    in.PeriodStart,
			PeriodEnd:      in.PeriodEnd,
			BankBalance:    in.BankBalance,
			Status:         models.ReconciliationStatusInProgress,
		}
		rec.Capture(snap)
		if rec.IsCorrupted() {
			markCorrupted(rec)
		}

		if err = r.GetReconciliationRepository().Create(actx, rec); err != nil {
			return err
		}

		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.Status == models.ReconciliationStatusFailed {
		rs.reportCorruption(ctx, out)
		return out, common.ErrLedgerCorruption
	}

	publishEvents(ctx, rs.srv, newEvent(rs.srv, models.EventReconciliationStarted, out.TrustAccountID, out.ID, out.ToModelResponse()))

	return out, nil
}

func (rs *reconciliation) GetByID(ctx context.Context, id string) (out *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return rs.srv.sqlRepo.GetReconciliationRepository().GetByID(ctx, id)
}

func (rs *reconciliation) List(ctx context.Context, trustAccountID string) (out []models.Reconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = rs.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, trustAccountID); err != nil {
		return nil, err
	}

	return rs.srv.sqlRepo.GetReconciliationRepository().ListByTrustAccount(ctx, trustAccountID)
}

func (rs *reconciliation) UpdateBankBalance(ctx context.Context, id string, bankBalance models.Decimal) (out *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !bankBalance.HasMinorUnitPrecision() {
		return nil, common.ErrInvalidAmountPrecision
	}

	err = rs.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		account, rec, err := rs.lockInProgress(actx, r, id)
		if err != nil {
			return err
		}

		snap, err := rs.snapshot(actx, r, account, rec.PeriodEnd)
		if err != nil {
			return err
		}

		rec.BankBalance = bankBalance
		rec.Capture(snap)
		if err = r.GetReconciliationRepository().Update(actx, rec); err != nil {
			return err
		}

		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (rs *reconciliation) Complete(ctx context.Context, id string) (out *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = rs.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		account, rec, err := rs.lockInProgress(actx, r, id)
		if err != nil {
			return err
		}

		snap, err := rs.snapshot(actx, r, account, rec.PeriodEnd)
		if err != nil {
			return err
		}
		rec.Capture(snap)

		switch {
		case rec.IsCorrupted():
			// persisted as failed, the caller still gets the corruption error after commit
			markCorrupted(rec)
		case !rec.IsBalanced():
			return fmt.Errorf("%w: discrepancy %s", common.ErrUnbalancedReconciliation, rec.Discrepancy.StringFixed(models.MinorUnitPlaces))
		default:
			now := common.Now()
			rec.Status = models.ReconciliationStatusCompleted
			rec.CompletedAt = &now
			if err = r.GetTrustAccountRepository().SetLastReconciledDate(actx, account.ID, rec.PeriodEnd); err != nil {
				return err
			}
		}

		if err = r.GetReconciliationRepository().Update(actx, rec); err != nil {
			return err
		}

		out = rec
		return nil
	})
	ledgerMetrics := rs.srv.metrics.GetLedgerPrometheus()
	if err != nil {
		if errors.Is(err, common.ErrUnbalancedReconciliation) {
			ledgerMetrics.RecordReconciliation(reconciliationResultUnbalanced)
		}
		return nil, err
	}

	if out.Status == models.ReconciliationStatusFailed {
		ledgerMetrics.RecordReconciliation(reconciliationResultCorrupted)
		rs.reportCorruption(ctx, out)
		return out, common.ErrLedgerCorruption
	}

	ledgerMetrics.RecordReconciliation(reconciliationResultCompleted)
	publishEvents(ctx, rs.srv, newEvent(rs.srv, models.EventReconciliationCompleted, out.TrustAccountID, out.ID, out.ToModelResponse()))

	return out, nil
}

// lockInProgress locks the account before the reconciliation row, the order postings use.
func (rs *reconciliation) lockInProgress(ctx context.Context, r repositories.SQLRepository, id string) (*models.TrustAccount, *models.Reconciliation, error) {
	recRepo := r.GetReconciliationRepository()

	rec, err := recRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	account, err := r.GetTrustAccountRepository().GetByIDForUpdate(ctx, rec.TrustAccountID)
	if err != nil {
		return nil, nil, err
	}

	rec, err = recRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !rec.IsInProgress() {
		return nil, nil, common.ErrReconciliationClosed
	}

	return account, rec, nil
}

// snapshot reads the book side while the caller holds the account lock, so the balance, the
// ledger sum and the outstanding items all describe the same point of the log.
func (rs *reconciliation) snapshot(ctx context.Context, r repositories.SQLRepository, account *models.TrustAccount, periodEnd time.Time) (snap models.BalanceSnapshot, err error) {
	ledgerSum, _, err := r.GetClientLedgerRepository().SumBalances(ctx, account.ID)
	if err != nil {
		return snap, err
	}

	deposits, disbursements, err := r.GetTransactionRepository().SumUncleared(ctx, account.ID, common.TruncateToDate(periodEnd).AddDate(0, 0, 1))
	if err != nil {
		return snap, err
	}

	return models.BalanceSnapshot{
		BookBalance:              account.BookBalance,
		LedgerBalanceSum:         ledgerSum,
		OutstandingDeposits:      deposits,
		OutstandingDisbursements: disbursements,
	}, nil
}

func markCorrupted(rec *models.Reconciliation) {
	rec.Status = models.ReconciliationStatusFailed
	rec.FailureReason = fmt.Sprintf("book balance %s does not equal client ledger sum %s",
		rec.BookBalance.StringFixed(models.MinorUnitPlaces),
		rec.LedgerBalanceSum.StringFixed(models.MinorUnitPlaces))
}

func (rs *reconciliation) reportCorruption(ctx context.Context, rec *models.Reconciliation) {
	log.Error(ctx, constants.LogPrefixReconciliation,
		log.String("status", "ledger corruption detected"),
		log.String("reconciliationId", rec.ID),
		log.String("trustAccountId", rec.TrustAccountID),
		log.String("bookBalance", rec.BookBalance.String()),
		log.String("ledgerBalanceSum", rec.LedgerBalanceSum.String()))

	publishEvents(ctx, rs.srv,
		newEvent(rs.srv, models.EventReconciliationFailed, rec.TrustAccountID, rec.ID, rec.ToModelResponse()),
		newEvent(rs.srv, models.EventLedgerCorruption, rec.TrustAccountID, rec.ID, rec.ToModelResponse()),
	)
}
