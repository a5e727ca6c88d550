package repositories

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type ApprovalRequestRepository interface {
	Create(ctx context.Context, en *models.ApprovalRequest) (err error)
	// GetByID loads the request with its decisions.
	GetByID(ctx context.Context, id string) (en *models.ApprovalRequest, err error)
	// GetByIDForUpdate loads and locks the request, serializing concurrent decisions.
	GetByIDForUpdate(ctx context.Context, id string) (en *models.ApprovalRequest, err error)
	UpdateStatus(ctx context.Context, en *models.ApprovalRequest) (err error)
	// CreateDecision appends a decision; a second decision from one approver is common.ErrDuplicateDecision.
	CreateDecision(ctx context.Context, en *models.ApprovalDecision) (err error)
}

type approvalRequestRepository sqlRepo

var _ ApprovalRequestRepository = (*approvalRequestRepository)(nil)

func scanApprovalRequest(row rowScanner) (*models.ApprovalRequest, error) {
	var (
		en         models.ApprovalRequest
		entityType string
		status     string
		approvers  pq.StringArray
		decidedAt  sql.NullTime
	)
	err := row.Scan(
		&en.ID,
		&en.WorkflowID,
		&entityType,
		&en.EntityID,
		&en.Amount,
		&en.CurrentLevel,
		&en.ApproverRole,
		&approvers,
		&en.RequireAll,
		&status,
		&decidedAt,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		return nil, err
	}
	en.EntityType = models.EntityType(entityType)
	en.Status = models.ApprovalStatus(status)
	en.DecidedAt = nullTimePtr(decidedAt)
	if len(approvers) > 0 {
		en.EligibleApprovers = []string(approvers)
	}

	return &en, nil
}

func (arr *approvalRequestRepository) Create(ctx context.Context, en *models.ApprovalRequest) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_request", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := arr.r.writer(ctx)

	approvers := en.EligibleApprovers
	if approvers == nil {
		approvers = []string{}
	}

	err = db.QueryRowContext(ctx, createApprovalRequestQuery,
		en.ID,
		en.WorkflowID,
		string(en.EntityType),
		en.EntityID,
		en.Amount,
		en.CurrentLevel,
		en.ApproverRole,
		pq.Array(approvers),
		en.RequireAll,
		string(en.Status),
		timePtrToNull(en.DecidedAt)).
		Scan(&en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		return mapPostgresError(err)
	}

	return nil
}

func (arr *approvalRequestRepository) GetByID(ctx context.Context, id string) (en *models.ApprovalRequest, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_request", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return arr.get(ctx, arr.r.reader(ctx), getApprovalRequestByIDQuery, id)
}

func (arr *approvalRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (en *models.ApprovalRequest, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_request", "SELECT FOR UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return arr.get(ctx, arr.r.writer(ctx), getApprovalRequestByIDForUpdateQuery, id)
}

func (arr *approvalRequestRepository) get(ctx context.Context, db querier, query, id string) (*models.ApprovalRequest, error) {
	en, err := scanApprovalRequest(db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, common.ErrApprovalRequestNotFound)
	}

	rows, err := db.QueryContext(ctx, listApprovalDecisionsQuery, id)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d        models.ApprovalDecision
			decision string
		)
		if err = rows.Scan(&d.ID, &d.RequestID, &d.ApproverID, &d.ApproverRole, &decision, &d.Comment, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Decision = models.DecisionKind(decision)
		en.Decisions = append(en.Decisions, d)
	}

	return en, rows.Err()
}

func (arr *approvalRequestRepository) UpdateStatus(ctx context.Context, en *models.ApprovalRequest) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_request", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := arr.r.writer(ctx)

	res, err := db.ExecContext(ctx, updateApprovalRequestStatusQuery, string(en.Status), timePtrToNull(en.DecidedAt), en.ID)
	if err != nil {
		return mapPostgresError(err)
	}

	return requireAffected(res, common.ErrApprovalRequestClosed)
}

func (arr *approvalRequestRepository) CreateDecision(ctx context.Context, en *models.ApprovalDecision) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_decision", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := arr.r.writer(ctx)

	err = db.QueryRowContext(ctx, createApprovalDecisionQuery,
		en.ID,
		en.RequestID,
		en.ApproverID,
		en.ApproverRole,
		string(en.Decision),
		en.Comment).
		Scan(&en.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintApprovalDecisionUnique) {
			return common.ErrDuplicateDecision
		}
		return mapPostgresError(err)
	}

	return nil
}
