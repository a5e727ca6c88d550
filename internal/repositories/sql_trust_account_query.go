package repositories

const (
	trustAccountColumns = `"id", "name", "bank_account_ref", "currency", "jurisdiction", "book_balance",
		"is_active", "last_reconciled_date", "version", "created_at", "updated_at"`

	createTrustAccountQuery = `INSERT INTO "trust_account"
		("id", "name", "bank_account_ref", "currency", "jurisdiction", "book_balance", "is_active", "version")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING "created_at", "updated_at"`

	getTrustAccountByIDQuery = `SELECT ` + trustAccountColumns + ` FROM "trust_account" WHERE "id" = $1`

	getTrustAccountByIDForUpdateQuery = getTrustAccountByIDQuery + ` FOR UPDATE`

	updateTrustAccountBalanceQuery = `UPDATE "trust_account"
		SET "book_balance" = $1, "version" = "version" + 1, "updated_at" = now()
		WHERE "id" = $2 AND "version" = $3`

	updateTrustAccountLastReconciledQuery = `UPDATE "trust_account"
		SET "last_reconciled_date" = $1, "updated_at" = now()
		WHERE "id" = $2`

	deactivateTrustAccountQuery = `UPDATE "trust_account"
		SET "is_active" = false, "updated_at" = now()
		WHERE "id" = $1`

	listTrustAccountsDueQuery = `SELECT ` + trustAccountColumns + ` FROM "trust_account"
		WHERE "is_active" = true AND ("last_reconciled_date" IS NULL OR "last_reconciled_date" < $1)
		ORDER BY "id"`
)
