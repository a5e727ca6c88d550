package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/trustbooks/go-trust-ledger/internal/models"
)

const (
	vendorBillColumns = `"id", "trust_account_id", COALESCE("client_ledger_id", ''), "vendor_id", "payee_name", "reference",
		"amount", "balance_due", "status", COALESCE("check_run_id", ''), "paid_at", "created_at", "updated_at"`

	createVendorBillQuery = `INSERT INTO "vendor_bill"
		("id", "trust_account_id", "client_ledger_id", "vendor_id", "payee_name", "reference", "amount", "balance_due", "status")
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
		RETURNING "created_at", "updated_at"`

	getVendorBillByIDQuery = `SELECT ` + vendorBillColumns + ` FROM "vendor_bill" WHERE "id" = $1`

	getVendorBillByIDForUpdateQuery = getVendorBillByIDQuery + ` FOR UPDATE`

	// rows are locked in id order so two overlapping batches cannot deadlock
	getVendorBillsByIDsForUpdateQuery = `SELECT ` + vendorBillColumns + ` FROM "vendor_bill"
		WHERE "id" = ANY($1)
		ORDER BY "id"
		FOR UPDATE`

	updateVendorBillQuery = `UPDATE "vendor_bill"
		SET "status" = $1, "balance_due" = $2, "check_run_id" = NULLIF($3, ''), "paid_at" = $4, "updated_at" = now()
		WHERE "id" = $5`
)

func buildListVendorBillsQuery(trustAccountID string, status models.VendorBillStatus) (string, []interface{}, error) {
	query := psql.
		Select(vendorBillColumns).
		From(`"vendor_bill"`)

	if trustAccountID != "" {
		query = query.Where(sq.Eq{`"trust_account_id"`: trustAccountID})
	}
	if status != "" {
		query = query.Where(sq.Eq{`"status"`: string(status)})
	}

	return query.OrderBy(`"created_at"`, `"id"`).ToSql()
}
