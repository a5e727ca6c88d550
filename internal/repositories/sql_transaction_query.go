package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/trustbooks/go-trust-ledger/internal/models"
)

const (
	transactionColumns = `"id", "sequence", "trust_account_id", "client_ledger_id", "kind", "amount", "signed_amount",
		"description", "reference", "metadata", "is_cleared", "cleared_date", "created_at"`

	createTransactionQuery = `INSERT INTO "ledger_transaction"
		("id", "trust_account_id", "client_ledger_id", "kind", "amount", "signed_amount", "description", "reference", "metadata")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING "sequence", "created_at"`

	getTransactionByIDQuery = `SELECT ` + transactionColumns + ` FROM "ledger_transaction" WHERE "id" = $1`

	markTransactionClearedQuery = `UPDATE "ledger_transaction"
		SET "is_cleared" = true, "cleared_date" = $1
		WHERE "id" = $2 AND "is_cleared" = false`

	sumUnclearedTransactionsQuery = `SELECT
			COALESCE(SUM("amount") FILTER (WHERE "signed_amount" > 0), 0),
			COALESCE(SUM("amount") FILTER (WHERE "signed_amount" < 0), 0)
		FROM "ledger_transaction"
		WHERE "trust_account_id" = $1 AND "is_cleared" = false AND "created_at" < $2`
)

// buildListTransactionQuery pages by sequence; a backward page is read descending and
// reversed by the response writer.
func buildListTransactionQuery(opts models.ListTransactionsFilter) (string, []interface{}, error) {
	cursor, limit, err := opts.BuildCursorAndLimit()
	if err != nil {
		return "", nil, err
	}

	query := psql.
		Select(transactionColumns).
		From(`"ledger_transaction"`).
		Where(sq.Eq{`"trust_account_id"`: opts.TrustAccountID})

	if opts.ClientLedgerID != "" {
		query = query.Where(sq.Eq{`"client_ledger_id"`: opts.ClientLedgerID})
	}
	if opts.Kind != "" {
		query = query.Where(sq.Eq{`"kind"`: string(opts.Kind)})
	}
	if opts.IsCleared != nil {
		query = query.Where(sq.Eq{`"is_cleared"`: *opts.IsCleared})
	}
	if opts.CreatedFrom != nil {
		query = query.Where(sq.GtOrEq{`"created_at"`: *opts.CreatedFrom})
	}
	if opts.CreatedTo != nil {
		query = query.Where(sq.Lt{`"created_at"`: *opts.CreatedTo})
	}

	orderBy := `"sequence" ASC`
	if cursor != nil {
		if cursor.Backward {
			query = query.Where(sq.Lt{`"sequence"`: cursor.Sequence})
			orderBy = `"sequence" DESC`
		} else {
			query = query.Where(sq.Gt{`"sequence"`: cursor.Sequence})
		}
	}

	return query.OrderBy(orderBy).Limit(uint64(limit)).ToSql()
}
