package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

// TransactionRepository is the append only transaction log. Rows are never updated except for
// the one way cleared flag.
type TransactionRepository interface {
	Create(ctx context.Context, en *models.Transaction) (err error)
	GetByID(ctx context.Context, id string) (en *models.Transaction, err error)
	// MarkCleared flips a pending transaction to cleared. It reports false when the row was
	// already cleared.
	MarkCleared(ctx context.Context, id string, clearedDate time.Time) (changed bool, err error)
	List(ctx context.Context, opts models.ListTransactionsFilter) (ens []models.Transaction, err error)
	// SumUncleared returns the magnitudes of uncleared credits and debits posted before asOf.
	SumUncleared(ctx context.Context, trustAccountID string, asOf time.Time) (deposits, disbursements models.Decimal, err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var (
		en          models.Transaction
		kind        string
		metadata    []byte
		clearedDate sql.NullTime
	)
	err := row.Scan(
		&en.ID,
		&en.Sequence,
		&en.TrustAccountID,
		&en.ClientLedgerID,
		&kind,
		&en.Amount,
		&en.SignedAmount,
		&en.Description,
		&en.Reference,
		&metadata,
		&en.IsCleared,
		&clearedDate,
		&en.CreatedAt)
	if err != nil {
		return nil, err
	}

	en.Kind = models.TransactionKind(kind)
	en.ClearedDate = nullTimePtr(clearedDate)
	if en.Metadata, err = unmarshalMetadata(metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata of %s: %w", en.ID, err)
	}

	return &en, nil
}

func (tr *transactionRepository) Create(ctx context.Context, en *models.Transaction) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("ledger_transaction", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.writer(ctx)

	metadata, err := marshalMetadata(en.Metadata)
	if err != nil {
		return err
	}

	err = db.QueryRowContext(ctx, createTransactionQuery,
		en.ID,
		en.TrustAccountID,
		en.ClientLedgerID,
		string(en.Kind),
		en.Amount,
		en.SignedAmount,
		en.Description,
		en.Reference,
		metadata).
		Scan(&en.Sequence, &en.CreatedAt)
	if err != nil {
		return mapPostgresError(err)
	}

	return nil
}

func (tr *transactionRepository) GetByID(ctx context.Context, id string) (en *models.Transaction, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("ledger_transaction", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.reader(ctx)

	en, err = scanTransaction(db.QueryRowContext(ctx, getTransactionByIDQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrTransactionNotFound)
	}

	return en, nil
}

func (tr *transactionRepository) MarkCleared(ctx context.Context, id string, clearedDate time.Time) (changed bool, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("ledger_transaction", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.writer(ctx)

	res, err := db.ExecContext(ctx, markTransactionClearedQuery, clearedDate, id)
	if err != nil {
		return false, mapPostgresError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (tr *transactionRepository) List(ctx context.Context, opts models.ListTransactionsFilter) (ens []models.Transaction, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("ledger_transaction", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.reader(ctx)

	query, args, err := buildListTransactionQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		en, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		ens = append(ens, *en)
	}

	return ens, rows.Err()
}

func (tr *transactionRepository) SumUncleared(ctx context.Context, trustAccountID string, asOf time.Time) (deposits, disbursements models.Decimal, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("ledger_transaction", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.reader(ctx)

	err = db.QueryRowContext(ctx, sumUnclearedTransactionsQuery, trustAccountID, asOf).Scan(&deposits, &disbursements)
	if err != nil {
		return models.Decimal{}, models.Decimal{}, mapPostgresError(err)
	}

	return deposits, disbursements, nil
}
