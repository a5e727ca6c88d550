package repositories

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/trustbooks/go-trust-ledger/internal/models"
)

const (
	createApprovalWorkflowQuery = `INSERT INTO "approval_workflow" ("id", "name", "entity_type")
		VALUES ($1, $2, $3)
		RETURNING "created_at"`

	getApprovalWorkflowByIDQuery = `SELECT "id", "name", "entity_type", "created_at"
		FROM "approval_workflow" WHERE "id" = $1`

	approvalLevelColumns = `"workflow_id", "level_number", "min_amount", "max_amount", "approver_role", "approvers",
		"require_all", "auto_approve"`

	listApprovalLevelsQuery = `SELECT ` + approvalLevelColumns + ` FROM "approval_level"
		WHERE "workflow_id" = ANY($1)
		ORDER BY "workflow_id", "level_number"`
)

func buildInsertApprovalLevelsQuery(workflowID string, levels []models.ApprovalLevel) (string, []interface{}, error) {
	query := psql.Insert(`"approval_level"`).
		Columns(`"workflow_id"`, `"level_number"`, `"min_amount"`, `"max_amount"`, `"approver_role"`, `"approvers"`,
			`"require_all"`, `"auto_approve"`)

	for _, l := range levels {
		var maxAmount interface{}
		if l.MaxAmount != nil {
			maxAmount = *l.MaxAmount
		}
		approvers := l.Approvers
		if approvers == nil {
			approvers = []string{}
		}
		query = query.Values(workflowID, l.LevelNumber, l.MinAmount, maxAmount, l.ApproverRole, pq.Array(approvers),
			l.RequireAll, l.AutoApprove)
	}

	return query.ToSql()
}

func buildListApprovalWorkflowsQuery(entityType models.EntityType) (string, []interface{}, error) {
	query := psql.
		Select(`"id"`, `"name"`, `"entity_type"`, `"created_at"`).
		From(`"approval_workflow"`)

	if entityType != "" {
		query = query.Where(sq.Eq{`"entity_type"`: string(entityType)})
	}

	return query.OrderBy(`"created_at"`, `"id"`).ToSql()
}
