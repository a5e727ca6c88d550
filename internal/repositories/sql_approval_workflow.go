package repositories

import (
	"context"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type ApprovalWorkflowRepository interface {
	// Create stores the workflow and its levels.
	Create(ctx context.Context, en *models.ApprovalWorkflow) (err error)
	GetByID(ctx context.Context, id string) (en *models.ApprovalWorkflow, err error)
	List(ctx context.Context, entityType models.EntityType) (ens []models.ApprovalWorkflow, err error)
}

type approvalWorkflowRepository sqlRepo

var _ ApprovalWorkflowRepository = (*approvalWorkflowRepository)(nil)

func (awr *approvalWorkflowRepository) Create(ctx context.Context, en *models.ApprovalWorkflow) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_workflow", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := awr.r.writer(ctx)

	err = db.QueryRowContext(ctx, createApprovalWorkflowQuery, en.ID, en.Name, string(en.EntityType)).Scan(&en.CreatedAt)
	if err != nil {
		return mapPostgresError(err)
	}

	query, args, err := buildInsertApprovalLevelsQuery(en.ID, en.Levels)
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return mapPostgresError(err)
	}

	return nil
}

func (awr *approvalWorkflowRepository) GetByID(ctx context.Context, id string) (en *models.ApprovalWorkflow, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_workflow", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := awr.r.reader(ctx)

	var (
		wf         models.ApprovalWorkflow
		entityType string
	)
	err = db.QueryRowContext(ctx, getApprovalWorkflowByIDQuery, id).Scan(&wf.ID, &wf.Name, &entityType, &wf.CreatedAt)
	if err != nil {
		return nil, notFound(err, common.ErrApprovalWorkflowNotFound)
	}
	wf.EntityType = models.EntityType(entityType)

	levels, err := awr.listLevels(ctx, wf.ID)
	if err != nil {
		return nil, err
	}
	wf.Levels = levels[wf.ID]

	return &wf, nil
}

func (awr *approvalWorkflowRepository) List(ctx context.Context, entityType models.EntityType) (ens []models.ApprovalWorkflow, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("approval_workflow", "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := awr.r.reader(ctx)

	query, args, err := buildListApprovalWorkflowsQuery(entityType)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var (
			wf models.ApprovalWorkflow
			et string
		)
		if err = rows.Scan(&wf.ID, &wf.Name, &et, &wf.CreatedAt); err != nil {
			return nil, err
		}
		wf.EntityType = models.EntityType(et)
		ens = append(ens, wf)
		ids = append(ids, wf.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ens, nil
	}

	levels, err := awr.listLevels(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range ens {
		ens[i].Levels = levels[ens[i].ID]
	}

	return ens, nil
}

func (awr *approvalWorkflowRepository) listLevels(ctx context.Context, workflowIDs ...string) (map[string][]models.ApprovalLevel, error) {
	db := awr.r.reader(ctx)

	rows, err := db.QueryContext(ctx, listApprovalLevelsQuery, pq.Array(workflowIDs))
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	levels := make(map[string][]models.ApprovalLevel, len(workflowIDs))
	for rows.Next() {
		var (
			workflowID string
			l          models.ApprovalLevel
			maxAmount  decimal.NullDecimal
			approvers  pq.StringArray
		)
		err = rows.Scan(
			&workflowID,
			&l.LevelNumber,
			&l.MinAmount,
			&maxAmount,
			&l.ApproverRole,
			&approvers,
			&l.RequireAll,
			&l.AutoApprove)
		if err != nil {
			return nil, err
		}
		if maxAmount.Valid {
			m := models.NewDecimalFromExternal(maxAmount.Decimal)
			l.MaxAmount = &m
		}
		if len(approvers) > 0 {
			l.Approvers = []string(approvers)
		}
		levels[workflowID] = append(levels[workflowID], l)
	}

	return levels, rows.Err()
}
