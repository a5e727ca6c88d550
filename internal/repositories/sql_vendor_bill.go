package repositories

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type VendorBillRepository interface {
	Create(ctx context.Context, en *models.VendorBill) (err error)
	GetByID(ctx context.Context, id string) (en *models.VendorBill, err error)
	GetByIDForUpdate(ctx context.Context, id string) (en *models.VendorBill, err error)
	// GetByIDsForUpdate locks every listed bill in id order. Unknown ids are simply absent from the result.
	GetByIDsForUpdate(ctx context.Context, ids []string) (ens []models.VendorBill, err error)
	Update(ctx context.Context, en *models.VendorBill) (err error)
	List(ctx context.Context, trustAccountID string, status models.VendorBillStatus) (ens []models.VendorBill, err error)
}

type vendorBillRepository sqlRepo

var _ VendorBillRepository = (*vendorBillRepository)(nil)

func scanVendorBill(row rowScanner) (*models.VendorBill, error) {
	var (
		en     models.VendorBill
		status string
		paidAt sql.NullTime
	)
	err := row.Scan(
		&en.ID,
		&en.TrustAccountID,
		&en.ClientLedgerID,
		&en.VendorID,
		&en.PayeeName,
		&en.Reference,
		&en.Amount,
		&en.BalanceDue,
		&status,
		&en.CheckRunID,
		&paidAt,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		return nil, err
	}
	en.Status = models.VendorBillStatus(status)
	en.PaidAt = nullTimePtr(paidAt)

	return &en, nil
}

func (vbr *vendorBillRepository) Create(ctx context.Context, en *models.VendorBill) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("vendor_bill", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := vbr.r.writer(ctx)

	err = db.QueryRowContext(ctx, createVendorBillQuery,
		en.ID,
		en.TrustAccountID,
		en.ClientLedgerID,
		en.VendorID,
		en.PayeeName,
		en.Reference,
		en.Amount,
		en.BalanceDue,
		string(en.Status)).
		Scan(&en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		return mapPostgresError(err)
	}

	return nil
}

func (vbr *vendorBillRepository) GetByID(ctx context.Context, id string) (en *models.VendorBill, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("vendor_bill", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := vbr.r.reader(ctx)

	en, err = scanVendorBill(db.QueryRowContext(ctx, getVendorBillByIDQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrVendorBillNotFound)
	}

	return en, nil
}

func (vbr *vendorBillRepository) GetByIDForUpdate(ctx context.Context, id string) (en *models.VendorBill, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("vendor_bill", "SELECT FOR UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := vbr.r.writer(ctx)

	en, err = scanVendorBill(db.QueryRowContext(ctx, getVendorBillByIDForUpdateQuery, id))
	if err != nil {
		return nil, notFound(err, common.ErrVendorBillNotFound)
	}

	return en, nil
}

func (vbr *vendorBillRepository) GetByIDsForUpdate(ctx context.Context, ids []string) (ens []models.VendorBill, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("vendor_bill", "SELECT FOR UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := vbr.r.writer(ctx)

	rows, err := db.QueryContext(ctx, getVendorBillsByIDsForUpdateQuery, pq.Array(ids))
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		en, err := scanVendorBill(rows)
		if err != nil {
			return nil, err
		}
		ens = append(ens, *en)
	}

	return ens, rows.Err()
}

func (vbr *vendorBillRepository) Update(ctx context.Context, en *models.VendorBill) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("vendor_bill", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := vbr.r.writer(ctx)

	res, err := db.ExecContext(ctx, updateVendorBillQuery,
		string(en.Status),
		en.BalanceDue,
		en.CheckRunID,
		timePtrToNull(en.PaidAt),
		en.ID)
	if err != nil {
		return mapPostgresError(err)
	}

	return requireAffected(res, common.ErrVendorBillNotFound)
}

func (vbr *vendorBillRepository) List(ctx context.Context, trustAccountID string, status models.VendorBillStatus) (ens []models.VendorBill, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("vendor_bill", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := vbr.r.reader(ctx)

	query, args, err := buildListVendorBillsQuery(trustAccountID, status)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		en, err := scanVendorBill(rows)
		if err != nil {
			return nil, err
		}
		ens = append(ens, *en)
	}

	return ens, rows.Err()
}
