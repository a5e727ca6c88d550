package repositories

import (
	"context"
	"database/sql"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type ReconciliationRepository interface {
	// Create fails with common.ErrReconciliationInProgress when the account already has an open run.
	Create(ctx context.Context, en *models.Reconciliation) (err error)
	GetByID(ctx context.Context, id string) (en *models.Reconciliation, err error)
	GetByIDForUpdate(ctx context.Context, id string) (en *models.Reconciliation, err error)
	GetInProgress(ctx context.Context, trustAccountID string) (en *models.Reconciliation, err error)
	// Update persists an in progress reconciliation; a finished one returns common.ErrReconciliationClosed.
	Update(ctx context.Context, en *models.Reconciliation) (err error)
	ListByTrustAccount(ctx context.Context, trustAccountID string) (ens []models.Reconciliation, err error)
}

type reconciliationRepository sqlRepo

var _ ReconciliationRepository = (*reconciliationRepository)(nil)

func scanReconciliation(row rowScanner) (*models.Reconciliation, error) {
	var (
		en          models.Reconciliation
		status      string
		completedAt sql.NullTime
	)
	err := row.Scan(
		&en.ID,
		&en.TrustAccountID,
		&en.PeriodStart,
		&en.PeriodEnd,
		&en.BankBalance,
		&en.BookBalance,
		&en.LedgerBalanceSum,
		&en.Discrepancy,
		&en.OutstandingDeposits,
		&en.OutstandingDisbursements,
		&status,
		&en.FailureReason,
		&completedAt,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		return nil, err
	}
	en.Status = models.ReconciliationStatus(status)
	en.CompletedAt = nullTimePtr(completedAt)

	return &en, nil
}

func (rr *reconciliationRepository) Create(ctx context.Context, en *models.Reconciliation) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("reconciliation", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.writer(ctx)

	err = db.QueryRowContext(ctx, createReconciliationQuery,
		en.ID,
		en.TrustAccountID,
		en.PeriodStart,
		en.PeriodEnd,
		en.BankBalance,
		en.BookBalance,
		en.LedgerBalanceSum,
		en.Discrepancy,
		en.OutstandingDeposits,
		en.OutstandingDisbursements,
		string(en.Status)).
		Scan(&en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintReconciliationInProgress) {
			return common.ErrReconciliationInProgress
		}
		return mapPostgresError(err)
	}

	return nil
}

func (rr *reconciliationRepository) GetByID(ctx context.Context, id string) (en *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("reconciliation", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.reader(ctx)

	en, err = scanReconciliation(db.QueryRowContext(ctx, getReconciliationByIDQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrReconciliationNotFound)
	}

	return en, nil
}

func (rr *reconciliationRepository) GetByIDForUpdate(ctx context.Context, id string) (en *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("reconciliation", "SELECT FOR UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.writer(ctx)

	en, err = scanReconciliation(db.QueryRowContext(ctx, getReconciliationByIDForUpdateQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrReconciliationNotFound)
	}

	return en, nil
}

func (rr *reconciliationRepository) GetInProgress(ctx context.Context, trustAccountID string) (en *models.Reconciliation, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("reconciliation", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.reader(ctx)

	en, err = scanReconciliation(db.QueryRowContext(ctx, getInProgressReconciliationQuery, trustAccountID))
	if err != nil {
		return nil, notFound(err, common.ErrReconciliationNotFound)
	}

	return en, nil
}

func (rr *reconciliationRepository) Update(ctx context.Context, en *models.Reconciliation) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("reconciliation", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.writer(ctx)

	err = db.QueryRowContext(ctx, updateReconciliationQuery,
		en.BankBalance,
		en.BookBalance,
		en.LedgerBalanceSum,
		en.Discrepancy,
		en.OutstandingDeposits,
		en.OutstandingDisbursements,
		string(en.Status),
		en.FailureReason,
		timePtrToNull(en.CompletedAt),
		en.ID).
		Scan(&en.UpdatedAt)
	if err != nil {
		return notFound(err, common.ErrReconciliationClosed)
	}

	return nil
}

func (rr *reconciliationRepository) ListByTrustAccount(ctx context.Context, trustAccountID string) (ens []models.Reconciliation, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("reconciliation", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.reader(ctx)

	rows, err := db.QueryContext(ctx, listReconciliationsQuery, trustAccountID)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		en, err := scanReconciliation(rows)
		if err != nil {
			return nil, err
		}
		ens = append(ens, *en)
	}

	return ens, rows.Err()
}
