package repositories

const (
	clientLedgerColumns = `"id", "trust_account_id", "client_id", "matter_id", "balance", "is_unallocated",
		"created_at", "updated_at"`

	createClientLedgerQuery = `INSERT INTO "client_ledger"
		("id", "trust_account_id", "client_id", "matter_id", "balance", "is_unallocated")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "created_at", "updated_at"`

	getClientLedgerByIDQuery = `SELECT ` + clientLedgerColumns + ` FROM "client_ledger" WHERE "id" = $1`

	getClientLedgerByIDForUpdateQuery = getClientLedgerByIDQuery + ` FOR UPDATE`

	getUnallocatedLedgerForUpdateQuery = `SELECT ` + clientLedgerColumns + ` FROM "client_ledger"
		WHERE "trust_account_id" = $1 AND "is_unallocated" = true
		FOR UPDATE`

	updateClientLedgerBalanceQuery = `UPDATE "client_ledger"
		SET "balance" = $1, "updated_at" = now()
		WHERE "id" = $2`

	listClientLedgersQuery = `SELECT ` + clientLedgerColumns + ` FROM "client_ledger"
		WHERE "trust_account_id" = $1
		ORDER BY "is_unallocated" DESC, "created_at", "id"`

	sumClientLedgersQuery = `SELECT COALESCE(SUM("balance"), 0), COUNT(*) FROM "client_ledger"
		WHERE "trust_account_id" = $1`

	constraintClientLedgerUnique = "client_ledger_trust_account_id_client_id_matter_id_key"
)
