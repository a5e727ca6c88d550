package repositories

const (
	approvalRequestColumns = `"id", "workflow_id", "entity_type", "entity_id", "amount", "current_level", "approver_role",
		"eligible_approvers", "require_all", "status", "decided_at", "created_at", "updated_at"`

	createApprovalRequestQuery = `INSERT INTO "approval_request"
		("id", "workflow_id", "entity_type", "entity_id", "amount", "current_level", "approver_role",
		 "eligible_approvers", "require_all", "status", "decided_at")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING "created_at", "updated_at"`

	getApprovalRequestByIDQuery = `SELECT ` + approvalRequestColumns + ` FROM "approval_request" WHERE "id" = $1`

	getApprovalRequestByIDForUpdateQuery = getApprovalRequestByIDQuery + ` FOR UPDATE`

	updateApprovalRequestStatusQuery = `UPDATE "approval_request"
		SET "status" = $1, "decided_at" = $2, "updated_at" = now()
		WHERE "id" = $3 AND "status" = 'pending'`

	createApprovalDecisionQuery = `INSERT INTO "approval_decision"
		("id", "request_id", "approver_id", "approver_role", "decision", "comment")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "created_at"`

	listApprovalDecisionsQuery = `SELECT "id", "request_id", "approver_id", "approver_role", "decision", "comment", "created_at"
		FROM "approval_decision"
		WHERE "request_id" = $1
		ORDER BY "created_at", "id"`

	constraintApprovalDecisionUnique = "approval_decision_request_id_approver_id_key"
)
