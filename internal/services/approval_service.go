package services

import (
	"context"
	"fmt"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/cache"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type ApprovalService interface {
	CreateWorkflow(ctx context.Context, in models.CreateApprovalWorkflowIn) (out *models.ApprovalWorkflow, err error)
	GetWorkflow(ctx context.Context, id string) (out *models.ApprovalWorkflow, err error)
	ListWorkflows(ctx context.Context, entityType models.EntityType) (out []models.ApprovalWorkflow, err error)
	// Submit applies the first matching level of the workflow to the amount. Only that level decides.
	// A vendor bill must be a draft and is submitted for its full balance due.
	Submit(ctx context.Context, in models.SubmitForApprovalIn) (out *models.ApprovalRequest, err error)
	GetRequest(ctx context.Context, id string) (out *models.ApprovalRequest, err error)
	Decide(ctx context.Context, in models.DecideApprovalIn) (out *models.ApprovalRequest, err error)
}

type approval service

var _ ApprovalService = (*approval)(nil)

func workflowCacheKey(id string) string {
	return fmt.Sprintf("approval-workflow:%s", id)
}

func isValidEntityType(t models.EntityType) bool {
	switch t {
	case models.EntityTypeExpense, models.EntityTypeVendorBill, models.EntityTypeInvoice:
		return true
	}
	return false
}

func (as *approval) CreateWorkflow(ctx context.Context, in models.CreateApprovalWorkflowIn) (out *models.ApprovalWorkflow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !isValidEntityType(in.EntityType) {
		return nil, fmt.Errorf("%w: unknown entity type %q", common.ErrValidation, in.EntityType)
	}
	if err = models.ValidateLevels(in.Levels); err != nil {
		return nil, err
	}

	levels := make([]models.ApprovalLevel, len(in.Levels))
	copy(levels, in.Levels)
	models.SortLevels(levels)

	wf := &models.ApprovalWorkflow{
		ID:         as.srv.idgenerator.Generate(idgenerator.PrefixApprovalWorkflow),
		Name:       in.Name,
		EntityType: in.EntityType,
		Levels:     levels,
	}
	if err = as.srv.sqlRepo.GetApprovalWorkflowRepository().Create(ctx, wf); err != nil {
		return nil, err
	}

	if cacheErr := as.srv.workflowCache.Set(ctx, workflowCacheKey(wf.ID), *wf, as.srv.conf.Ledger.WorkflowCacheTTL); cacheErr != nil {
		log.Warn(ctx, constants.LogPrefixApproval,
			log.String("status", "failed to cache workflow"),
			log.String("workflowId", wf.ID),
			log.Err(cacheErr))
	}

	return wf, nil
}

// GetWorkflow reads through the workflow cache. Workflows are never edited once stored.
func (as *approval) GetWorkflow(ctx context.Context, id string) (out *models.ApprovalWorkflow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	wf, err := as.srv.workflowCache.GetOrSet(ctx, cache.GetOrSetOpts[models.ApprovalWorkflow]{
		Key: workflowCacheKey(id),
		TTL: as.srv.conf.Ledger.WorkflowCacheTTL,
		Callback: func() (models.ApprovalWorkflow, error) {
			en, err := as.srv.sqlRepo.GetApprovalWorkflowRepository().GetByID(ctx, id)
			if err != nil {
				return models.ApprovalWorkflow{}, err
			}
			return *en, nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &wf, nil
}

func (as *approval) ListWorkflows(ctx context.Context, entityType models.EntityType) (out []models.ApprovalWorkflow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if entityType != "" && !isValidEntityType(entityType) {
		return nil, fmt.Errorf("%w: unknown entity type %q", common.ErrValidation, entityType)
	}

	return as.srv.sqlRepo.GetApprovalWorkflowRepository().List(ctx, entityType)
}

func (as *approval) Submit(ctx context.Context, in models.SubmitForApprovalIn) (out *models.ApprovalRequest, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = validateAmount(in.Amount); err != nil {
		return nil, err
	}

	wf, err := as.GetWorkflow(ctx, in.WorkflowID)
	if err != nil {
		return nil, err
	}

	level, err := wf.MatchLevel(in.Amount)
	if err != nil {
		return nil, err
	}

	req := models.NewApprovalRequest(
		as.srv.idgenerator.Generate(idgenerator.PrefixApprovalRequest),
		*wf, level, in.EntityID, in.Amount, common.Now(),
	)

	err = as.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		if req.EntityType == models.EntityTypeVendorBill {
			bill, err := r.GetVendorBillRepository().GetByIDForUpdate(actx, req.EntityID)
			if err != nil {
				return err
			}
			if err = bill.CheckSubmittable(in.Amount); err != nil {
				return fmt.Errorf("%w: %s", err, bill.ID)
			}
			if err = syncBillWithRequest(actx, r, bill, req.Status); err != nil {
				return err
			}
		}

		return r.GetApprovalRequestRepository().Create(actx, &req)
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, as.srv, newEvent(as.srv, models.EventApprovalSubmitted, "", req.ID, req.ToModelResponse()))

	return &req, nil
}

func (as *approval) GetRequest(ctx context.Context, id string) (out *models.ApprovalRequest, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return as.srv.sqlRepo.GetApprovalRequestRepository().GetByID(ctx, id)
}

// Decide records one approver decision. The request row stays locked from the read of earlier
// decisions until the new status is written, so two concurrent approvals always see each other.
func (as *approval) Decide(ctx context.Context, in models.DecideApprovalIn) (out *models.ApprovalRequest, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !in.Decision.IsValid() {
		return nil, common.ErrInvalidDecision
	}

	err = as.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		reqRepo := r.GetApprovalRequestRepository()

		req, err := reqRepo.GetByIDForUpdate(actx, in.RequestID)
		if err != nil {
			return err
		}

		decision := models.ApprovalDecision{
			ID:           as.srv.idgenerator.Generate(idgenerator.PrefixApprovalDecision),
			RequestID:    req.ID,
			ApproverID:   in.ApproverID,
			ApproverRole: in.ApproverRole,
			Decision:     in.Decision,
			Comment:      in.Comment,
			CreatedAt:    common.Now(),
		}
		if err = req.Apply(decision); err != nil {
			return err
		}

		if err = reqRepo.CreateDecision(actx, &decision); err != nil {
			return err
		}

		if req.IsClosed() {
			if err = reqRepo.UpdateStatus(actx, req); err != nil {
				return err
			}
		}

		if req.IsClosed() && req.EntityType == models.EntityTypeVendorBill {
			bill, err := r.GetVendorBillRepository().GetByIDForUpdate(actx, req.EntityID)
			if err != nil {
				return err
			}
			if err = syncBillWithRequest(actx, r, bill, req.Status); err != nil {
				return err
			}
		}

		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	as.srv.metrics.GetLedgerPrometheus().RecordApprovalDecision(string(in.Decision), string(out.Status))
	publishEvents(ctx, as.srv, newEvent(as.srv, models.EventApprovalDecided, "", out.ID, out.ToModelResponse()))

	return out, nil
}

// syncBillWithRequest moves the bill along with its approval request: pending_approval while
// pending, then approved, rejected, or back to draft on escalation.
func syncBillWithRequest(ctx context.Context, r repositories.SQLRepository, bill *models.VendorBill, status models.ApprovalStatus) error {
	if !bill.ApplyApprovalStatus(status, common.Now()) {
		return nil
	}
	return r.GetVendorBillRepository().Update(ctx, bill)
}
