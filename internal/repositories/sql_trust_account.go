package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type TrustAccountRepository interface {
	Create(ctx context.Context, en *models.TrustAccount) (err error)
	GetByID(ctx context.Context, id string) (en *models.TrustAccount, err error)
	// GetByIDForUpdate locks the account row until the surrounding Atomic ends. Every balance
	// mutation of an account starts here.
	GetByIDForUpdate(ctx context.Context, id string) (en *models.TrustAccount, err error)
	// UpdateBalance writes en.BookBalance guarded by en.Version and bumps the version.
	UpdateBalance(ctx context.Context, en *models.TrustAccount) (err error)
	SetLastReconciledDate(ctx context.Context, id string, date time.Time) (err error)
	Deactivate(ctx context.Context, id string) (err error)
	// ListDueForReconciliation returns active accounts never reconciled or last reconciled before cutoff.
	ListDueForReconciliation(ctx context.Context, cutoff time.Time) (ens []models.TrustAccount, err error)
}

type trustAccountRepository sqlRepo

var _ TrustAccountRepository = (*trustAccountRepository)(nil)

func scanTrustAccount(row rowScanner) (*models.TrustAccount, error) {
	var (
		en             models.TrustAccount
		lastReconciled sql.NullTime
	)
	err := row.Scan(
		&en.ID,
		&en.Name,
		&en.BankAccountRef,
		&en.Currency,
		&en.Jurisdiction,
		&en.BookBalance,
		&en.IsActive,
		&lastReconciled,
		&en.Version,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		return nil, err
	}
	en.LastReconciledDate = nullTimePtr(lastReconciled)

	return &en, nil
}

func (tar *trustAccountRepository) Create(ctx context.Context, en *models.TrustAccount) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("trust_account", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tar.r.writer(ctx)

	err = db.QueryRowContext(ctx, createTrustAccountQuery,
		en.ID,
		en.Name,
		en.BankAccountRef,
		en.Currency,
		en.Jurisdiction,
		en.BookBalance,
		en.IsActive,
		en.Version).
		Scan(&en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		return mapPostgresError(err)
	}

	return nil
}

func (tar *trustAccountRepository) GetByID(ctx context.Context, id string) (en *models.TrustAccount, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("trust_account", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tar.r.reader(ctx)

	en, err = scanTrustAccount(db.QueryRowContext(ctx, getTrustAccountByIDQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrTrustAccountNotFound)
	}

	return en, nil
}

func (tar *trustAccountRepository) GetByIDForUpdate(ctx context.Context, id string) (en *models.TrustAccount, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("trust_account", "SELECT FOR UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tar.r.writer(ctx)

	en, err = scanTrustAccount(db.QueryRowContext(ctx, getTrustAccountByIDForUpdateQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrTrustAccountNotFound)
	}

	return en, nil
}

func (tar *trustAccountRepository) UpdateBalance(ctx context.Context, en *models.TrustAccount) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("trust_account", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tar.r.writer(ctx)

	res, err := db.ExecContext(ctx, updateTrustAccountBalanceQuery, en.BookBalance, en.ID, en.Version)
	if err != nil {
		return mapPostgresError(err)
	}

	if err = requireAffected(res, common.ErrConcurrentModification); err != nil {
		return err
	}
	en.Version++

	return nil
}

func (tar *trustAccountRepository) SetLastReconciledDate(ctx context.Context, id string, date time.Time) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("trust_account", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tar.r.writer(ctx)

	res, err := db.ExecContext(ctx, updateTrustAccountLastReconciledQuery, date, id)
	if err != nil {
		return mapPostgresError(err)
	}

	return requireAffected(res, common.ErrTrustAccountNotFound)
}

func (tar *trustAccountRepository) Deactivate(ctx context.Context, id string) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("trust_account", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tar.r.writer(ctx)

	res, err := db.ExecContext(ctx, deactivateTrustAccountQuery, id)
	if err != nil {
		return mapPostgresError(err)
	}

	return requireAffected(res, common.ErrTrustAccountNotFound)
}

func (tar *trustAccountRepository) ListDueForReconciliation(ctx context.Context, cutoff time.Time) (ens []models.TrustAccount, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("trust_account", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tar.r.reader(ctx)

	rows, err := db.QueryContext(ctx, listTrustAccountsDueQuery, cutoff)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		en, err := scanTrustAccount(rows)
		if err != nil {
			return nil, err
		}
		ens = append(ens, *en)
	}

	return ens, rows.Err()
}
