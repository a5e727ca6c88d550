package repositories

const (
	reconciliationColumns = `"id", "trust_account_id", "period_start", "period_end", "bank_balance", "book_balance",
		"ledger_balance_sum", "discrepancy", "outstanding_deposits", "outstanding_disbursements", "status",
		"failure_reason", "completed_at", "created_at", "updated_at"`

	createReconciliationQuery = `INSERT INTO "reconciliation"
		("id", "trust_account_id", "period_start", "period_end", "bank_balance", "book_balance", "ledger_balance_sum",
		 "discrepancy", "outstanding_deposits", "outstanding_disbursements", "status")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING "created_at", "updated_at"`

	getReconciliationByIDQuery = `SELECT ` + reconciliationColumns + ` FROM "reconciliation" WHERE "id" = $1`

	getReconciliationByIDForUpdateQuery = getReconciliationByIDQuery + ` FOR UPDATE`

	getInProgressReconciliationQuery = `SELECT ` + reconciliationColumns + ` FROM "reconciliation"
		WHERE "trust_account_id" = $1 AND "status" = 'in_progress'`

	// the status guard keeps a finished reconciliation final
	updateReconciliationQuery = `UPDATE "reconciliation"
		SET "bank_balance" = $1,
			"book_balance" = $2,
			"ledger_balance_sum" = $3,
			"discrepancy" = $4,
			"outstanding_deposits" = $5,
			"outstanding_disbursements" = $6,
			"status" = $7,
			"failure_reason" = $8,
			"completed_at" = $9,
			"updated_at" = now()
		WHERE "id" = $10 AND "status" = 'in_progress'
		RETURNING "updated_at"`

	listReconciliationsQuery = `SELECT ` + reconciliationColumns + ` FROM "reconciliation"
		WHERE "trust_account_id" = $1
		ORDER BY "period_end" DESC, "created_at" DESC`

	constraintReconciliationInProgress = "reconciliation_one_in_progress_idx"
)
