package repositories

import (
	"github.com/lib/pq"

	"github.com/trustbooks/go-trust-ledger/internal/models"
)

const (
	createCheckRunQuery = `INSERT INTO "check_run"
		("id", "trust_account_id", "consolidate_by_payee", "check_count", "total_amount", "first_check_number",
		 "last_check_number", "status")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING "created_at"`

	getCheckRunByIDQuery = `SELECT "id", "trust_account_id", "consolidate_by_payee", "check_count", "total_amount",
		"first_check_number", "last_check_number", "status", "created_at"
		FROM "check_run" WHERE "id" = $1`

	listCheckRunItemsQuery = `SELECT "id", "check_run_id", "check_number", "vendor_id", "payee_name", "client_ledger_id",
		"amount", "amount_in_words", "memo", "payable_ids", "transaction_id"
		FROM "check_run_item"
		WHERE "check_run_id" = $1
		ORDER BY "check_number"`

	getNextCheckNumberForUpdateQuery = `SELECT "next_check_number" FROM "check_sequence"
		WHERE "trust_account_id" = $1
		FOR UPDATE`

	createCheckSequenceQuery = `INSERT INTO "check_sequence" ("trust_account_id", "next_check_number")
		VALUES ($1, $2)`

	updateNextCheckNumberQuery = `UPDATE "check_sequence"
		SET "next_check_number" = $1, "updated_at" = now()
		WHERE "trust_account_id" = $2`
)

func buildInsertCheckRunItemsQuery(run *models.CheckRun) (string, []interface{}, error) {
	query := psql.Insert(`"check_run_item"`).
		Columns(`"id"`, `"check_run_id"`, `"trust_account_id"`, `"check_number"`, `"vendor_id"`, `"payee_name"`,
			`"client_ledger_id"`, `"amount"`, `"amount_in_words"`, `"memo"`, `"payable_ids"`, `"transaction_id"`)

	for _, it := range run.Items {
		query = query.Values(it.ID, run.ID, run.TrustAccountID, it.CheckNumber, it.VendorID, it.PayeeName,
			it.ClientLedgerID, it.Amount, it.AmountInWords, it.Memo, pq.Array(it.PayableIDs), it.TransactionID)
	}

	return query.ToSql()
}
