package repositories

import (
	"context"

	"github.com/lib/pq"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type CheckRunRepository interface {
	// Create stores the run header and all of its items.
	Create(ctx context.Context, en *models.CheckRun) (err error)
	GetByID(ctx context.Context, id string) (en *models.CheckRun, err error)
}

type checkRunRepository sqlRepo

var _ CheckRunRepository = (*checkRunRepository)(nil)

func (crr *checkRunRepository) Create(ctx context.Context, en *models.CheckRun) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("check_run", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := crr.r.writer(ctx)

	err = db.QueryRowContext(ctx, createCheckRunQuery,
		en.ID,
		en.TrustAccountID,
		en.ConsolidateByPayee,
		en.CheckCount,
		en.TotalAmount,
		en.FirstCheckNumber,
		en.LastCheckNumber,
		en.Status).
		Scan(&en.CreatedAt)
	if err != nil {
		return mapPostgresError(err)
	}

	if len(en.Items) == 0 {
		return nil
	}

	query, args, err := buildInsertCheckRunItemsQuery(en)
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return mapPostgresError(err)
	}

	for i := range en.Items {
		en.Items[i].CheckRunID = en.ID
	}

	return nil
}

func (crr *checkRunRepository) GetByID(ctx context.Context, id string) (en *models.CheckRun, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("check_run", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := crr.r.reader(ctx)

	var run models.CheckRun
	err = db.QueryRowContext(ctx, getCheckRunByIDQuery, id).Scan(
		&run.ID,
		&run.TrustAccountID,
		&run.ConsolidateByPayee,
		&run.CheckCount,
		&run.TotalAmount,
		&run.FirstCheckNumber,
		&run.LastCheckNumber,
		&run.Status,
		&run.CreatedAt)
	if err != nil {
		return nil, notFound(err, common.ErrCheckRunNotFound)
	}

	rows, err := db.QueryContext(ctx, listCheckRunItemsQuery, id)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			it         models.CheckRunItem
			payableIDs pq.StringArray
		)
		err = rows.Scan(
			&it.ID,
			&it.CheckRunID,
			&it.CheckNumber,
			&it.VendorID,
			&it.PayeeName,
			&it.ClientLedgerID,
			&it.Amount,
			&it.AmountInWords,
			&it.Memo,
			&payableIDs,
			&it.TransactionID)
		if err != nil {
			return nil, err
		}
		it.PayableIDs = []string(payableIDs)
		run.Items = append(run.Items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &run, nil
}
