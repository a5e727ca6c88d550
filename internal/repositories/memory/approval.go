package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type approvalWorkflowRepository struct {
	r *Repository
}

var _ repositories.ApprovalWorkflowRepository = (*approvalWorkflowRepository)(nil)

func copyWorkflow(en models.ApprovalWorkflow) models.ApprovalWorkflow {
	en.Levels = slices.Clone(en.Levels)
	for i := range en.Levels {
		en.Levels[i].Approvers = slices.Clone(en.Levels[i].Approvers)
	}
	models.SortLevels(en.Levels)
	return en
}

func (awr *approvalWorkflowRepository) Create(ctx context.Context, en *models.ApprovalWorkflow) error {
	defer awr.r.write(ctx)()

	en.CreatedAt = awr.r.now()
	awr.r.data.workflows[en.ID] = copyWorkflow(*en)

	return nil
}

func (awr *approvalWorkflowRepository) GetByID(ctx context.Context, id string) (*models.ApprovalWorkflow, error) {
	defer awr.r.read(ctx)()

	en, ok := awr.r.data.workflows[id]
	if !ok {
		return nil, common.ErrApprovalWorkflowNotFound
	}
	cp := copyWorkflow(en)

	return &cp, nil
}

func (awr *approvalWorkflowRepository) List(ctx context.Context, entityType models.EntityType) ([]models.ApprovalWorkflow, error) {
	defer awr.r.read(ctx)()

	var ens []models.ApprovalWorkflow
	for _, en := range awr.r.data.workflows {
		if entityType == "" || en.EntityType == entityType {
			ens = append(ens, copyWorkflow(en))
		}
	}
	sort.Slice(ens, func(i, j int) bool {
		if !ens[i].CreatedAt.Equal(ens[j].CreatedAt) {
			return ens[i].CreatedAt.Before(ens[j].CreatedAt)
		}
		return ens[i].ID < ens[j].ID
	})

	return ens, nil
}

type approvalRequestRepository struct {
	r *Repository
}

var _ repositories.ApprovalRequestRepository = (*approvalRequestRepository)(nil)

func copyRequest(en models.ApprovalRequest) models.ApprovalRequest {
	en.EligibleApprovers = slices.Clone(en.EligibleApprovers)
	en.Decisions = slices.Clone(en.Decisions)
	return en
}

func (arr *approvalRequestRepository) Create(ctx context.Context, en *models.ApprovalRequest) error {
	defer arr.r.write(ctx)()

	now := arr.r.now()
	en.CreatedAt, en.UpdatedAt = now, now
	stored := copyRequest(*en)
	stored.Decisions = nil
	arr.r.data.requests[en.ID] = stored

	return nil
}

func (arr *approvalRequestRepository) GetByID(ctx context.Context, id string) (*models.ApprovalRequest, error) {
	defer arr.r.read(ctx)()

	en, ok := arr.r.data.requests[id]
	if !ok {
		return nil, common.ErrApprovalRequestNotFound
	}
	cp := copyRequest(en)

	return &cp, nil
}

func (arr *approvalRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.ApprovalRequest, error) {
	return arr.GetByID(ctx, id)
}

func (arr *approvalRequestRepository) UpdateStatus(ctx context.Context, en *models.ApprovalRequest) error {
	defer arr.r.write(ctx)()

	stored, ok := arr.r.data.requests[en.ID]
	if !ok || stored.Status != models.ApprovalStatusPending {
		return common.ErrApprovalRequestClosed
	}
	stored.Status = en.Status
	stored.DecidedAt = en.DecidedAt
	stored.UpdatedAt = arr.r.now()
	arr.r.data.requests[en.ID] = stored

	return nil
}

func (arr *approvalRequestRepository) CreateDecision(ctx context.Context, en *models.ApprovalDecision) error {
	defer arr.r.write(ctx)()

	stored, ok := arr.r.data.requests[en.RequestID]
	if !ok {
		return common.ErrApprovalRequestNotFound
	}
	for _, d := range stored.Decisions {
		if d.ApproverID == en.ApproverID {
			return common.ErrDuplicateDecision
		}
	}

	en.CreatedAt = arr.r.now()
	stored.Decisions = append(slices.Clone(stored.Decisions), *en)
	arr.r.data.requests[en.RequestID] = stored

	return nil
}
