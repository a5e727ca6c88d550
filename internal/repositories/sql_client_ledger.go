package repositories

import (
	"context"
	"fmt"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type ClientLedgerRepository interface {
	Create(ctx context.Context, en *models.ClientLedger) (err error)
	GetByID(ctx context.Context, id string) (en *models.ClientLedger, err error)
	GetByIDForUpdate(ctx context.Context, id string) (en *models.ClientLedger, err error)
	GetUnallocatedForUpdate(ctx context.Context, trustAccountID string) (en *models.ClientLedger, err error)
	UpdateBalance(ctx context.Context, en *models.ClientLedger) (err error)
	ListByTrustAccount(ctx context.Context, trustAccountID string) (ens []models.ClientLedger, err error)
	// SumBalances returns the sum of every ledger balance of the account and the ledger count.
	SumBalances(ctx context.Context, trustAccountID string) (sum models.Decimal, count int, err error)
}

type clientLedgerRepository sqlRepo

var _ ClientLedgerRepository = (*clientLedgerRepository)(nil)

func scanClientLedger(row rowScanner) (*models.ClientLedger, error) {
	var en models.ClientLedger
	err := row.Scan(
		&en.ID,
		&en.TrustAccountID,
		&en.ClientID,
		&en.MatterID,
		&en.Balance,
		&en.IsUnallocated,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &en, nil
}

func (clr *clientLedgerRepository) Create(ctx context.Context, en *models.ClientLedger) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("client_ledger", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := clr.r.writer(ctx)

	err = db.QueryRowContext(ctx, createClientLedgerQuery,
		en.ID,
		en.TrustAccountID,
		en.ClientID,
		en.MatterID,
		en.Balance,
		en.IsUnallocated).
		Scan(&en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintClientLedgerUnique) {
			return fmt.Errorf("%w: ledger for client %s already exists", common.ErrValidation, en.ClientID)
		}
		return mapPostgresError(err)
	}

	return nil
}

func (clr *clientLedgerRepository) GetByID(ctx context.Context, id string) (en *models.ClientLedger, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("client_ledger", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := clr.r.reader(ctx)

	en, err = scanClientLedger(db.QueryRowContext(ctx, getClientLedgerByIDQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrClientLedgerNotFound)
	}

	return en, nil
}

func (clr *clientLedgerRepository) GetByIDForUpdate(ctx context.Context, id string) (en *models.ClientLedger, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("client_ledger", "SELECT FOR UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := clr.r.writer(ctx)

	en, err = scanClientLedger(db.QueryRowContext(ctx, getClientLedgerByIDForUpdateQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrClientLedgerNotFound)
	}

	return en, nil
}

func (clr *clientLedgerRepository) GetUnallocatedForUpdate(ctx context.Context, trustAccountID string) (en *models.ClientLedger, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("client_ledger", "SELECT FOR UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := clr.r.writer(ctx)

	en, err = scanClientLedger(db.QueryRowContext(ctx, getUnallocatedLedgerForUpdateQuery, trustAccountID))
	if err != nil {
		return nil, notFound(err, common.ErrClientLedgerNotFound)
	}

	return en, nil
}

func (clr *clientLedgerRepository) UpdateBalance(ctx context.Context, en *models.ClientLedger) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("client_ledger", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := clr.r.writer(ctx)

	res, err := db.ExecContext(ctx, updateClientLedgerBalanceQuery, en.Balance, en.ID)
	if err != nil {
		return mapPostgresError(err)
	}

	return requireAffected(res, common.ErrClientLedgerNotFound)
}

func (clr *clientLedgerRepository) ListByTrustAccount(ctx context.Context, trustAccountID string) (ens []models.ClientLedger, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("client_ledger", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := clr.r.reader(ctx)

	rows, err := db.QueryContext(ctx, listClientLedgersQuery, trustAccountID)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		en, err := scanClientLedger(rows)
		if err != nil {
			return nil, err
		}
		ens = append(ens, *en)
	}

	return ens, rows.Err()
}

func (clr *clientLedgerRepository) SumBalances(ctx context.Context, trustAccountID string) (sum models.Decimal, count int, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("client_ledger", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := clr.r.reader(ctx)

	err = db.QueryRowContext(ctx, sumClientLedgersQuery, trustAccountID).Scan(&sum, &count)
	if err != nil {
		return models.Decimal{}, 0, mapPostgresError(err)
	}

	return sum, count, nil
}
