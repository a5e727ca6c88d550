package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

func decimalPtr(s string) *models.Decimal {
	d := models.MustNewDecimal(s)
	return &d
}

func tieredLevels() []models.ApprovalLevel {
	// deliberately out of order, the service sorts them
	return []models.ApprovalLevel{
		{LevelNumber: 3, MinAmount: models.MustNewDecimal("5000.01"), ApproverRole: "partner", Approvers: []string{"p-1", "p-2"}, RequireAll: true},
		{LevelNumber: 1, MinAmount: models.MustNewDecimal("0.01"), MaxAmount: decimalPtr("500.00"), AutoApprove: true},
		{LevelNumber: 2, MinAmount: models.MustNewDecimal("500.01"), MaxAmount: decimalPtr("5000.00"), ApproverRole: "manager"},
	}
}

func (h *testServiceHelper) newWorkflow(t *testing.T, entityType models.EntityType) *models.ApprovalWorkflow {
	t.Helper()

	wf, err := h.services.Approval.CreateWorkflow(context.Background(), models.CreateApprovalWorkflowIn{
		Name:       "Disbursements",
		EntityType: entityType,
		Levels:     tieredLevels(),
	})
	require.NoError(t, err)

	return wf
}

func TestApprovalService_CreateWorkflow(t *testing.T) {
	tests := []struct {
		name    string
		in      models.CreateApprovalWorkflowIn
		wantErr error
	}{
		{
			name: "tiered levels",
			in:   models.CreateApprovalWorkflowIn{Name: "Expenses", EntityType: models.EntityTypeExpense, Levels: tieredLevels()},
		},
		{
			name:    "unknown entity type",
			in:      models.CreateApprovalWorkflowIn{Name: "X", EntityType: "timesheet", Levels: tieredLevels()},
			wantErr: common.ErrValidation,
		},
		{
			name:    "no levels",
			in:      models.CreateApprovalWorkflowIn{Name: "X", EntityType: models.EntityTypeInvoice},
			wantErr: common.ErrInvalidApprovalLevels,
		},
		{
			name: "gap in level numbers",
			in: models.CreateApprovalWorkflowIn{Name: "X", EntityType: models.EntityTypeInvoice, Levels: []models.ApprovalLevel{
				{LevelNumber: 1, MinAmount: models.MustNewDecimal("0"), MaxAmount: decimalPtr("10.00"), AutoApprove: true},
				{LevelNumber: 3, MinAmount: models.MustNewDecimal("10.01")},
			}},
			wantErr: common.ErrInvalidApprovalLevels,
		},
		{
			name: "max below min",
			in: models.CreateApprovalWorkflowIn{Name: "X", EntityType: models.EntityTypeInvoice, Levels: []models.ApprovalLevel{
				{LevelNumber: 1, MinAmount: models.MustNewDecimal("100.00"), MaxAmount: decimalPtr("10.00")},
			}},
			wantErr: common.ErrInvalidApprovalLevels,
		},
		{
			name: "require all without approvers",
			in: models.CreateApprovalWorkflowIn{Name: "X", EntityType: models.EntityTypeInvoice, Levels: []models.ApprovalLevel{
				{LevelNumber: 1, MinAmount: models.MustNewDecimal("0"), RequireAll: true},
			}},
			wantErr: common.ErrInvalidApprovalLevels,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			ctx := context.Background()

			wf, err := h.services.Approval.CreateWorkflow(ctx, tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			for i, l := range wf.Levels {
				assert.Equal(t, i+1, l.LevelNumber)
			}

			cached, err := h.workflowCache.Get(ctx, "approval-workflow:"+wf.ID)
			require.NoError(t, err)
			assert.Equal(t, wf.ID, cached.ID)

			got, err := h.services.Approval.GetWorkflow(ctx, wf.ID)
			require.NoError(t, err)
			assert.Equal(t, wf.Name, got.Name)
		})
	}
}

func TestApprovalService_GetWorkflow_CacheMiss(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	wf := h.newWorkflow(t, models.EntityTypeExpense)
	require.NoError(t, h.workflowCache.Delete(ctx, "approval-workflow:"+wf.ID))

	got, err := h.services.Approval.GetWorkflow(ctx, wf.ID)
	require.NoError(t, err)
	assert.Len(t, got.Levels, 3)

	_, err = h.services.Approval.GetWorkflow(ctx, "AW-missing")
	assert.ErrorIs(t, err, common.ErrApprovalWorkflowNotFound)
}

func TestApprovalService_Submit_LevelBoundaries(t *testing.T) {
	tests := []struct {
		amount     string
		wantLevel  int
		wantStatus models.ApprovalStatus
	}{
		{amount: "0.01", wantLevel: 1, wantStatus: models.ApprovalStatusApproved},
		{amount: "500.00", wantLevel: 1, wantStatus: models.ApprovalStatusApproved},
		{amount: "500.01", wantLevel: 2, wantStatus: models.ApprovalStatusPending},
		{amount: "5000.00", wantLevel: 2, wantStatus: models.ApprovalStatusPending},
		{amount: "5000.01", wantLevel: 3, wantStatus: models.ApprovalStatusPending},
	}

	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			h := serviceTestHelper(t)
			wf := h.newWorkflow(t, models.EntityTypeExpense)

			req, err := h.services.Approval.Submit(context.Background(), models.SubmitForApprovalIn{
				WorkflowID: wf.ID,
				EntityID:   "EXP-1",
				Amount:     models.MustNewDecimal(tc.amount),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, req.CurrentLevel)
			assert.Equal(t, tc.wantStatus, req.Status)
		})
	}
}

func TestApprovalService_Submit_NoMatchingLevel(t *testing.T) {
	h := serviceTestHelper(t)

	wf, err := h.services.Approval.CreateWorkflow(context.Background(), models.CreateApprovalWorkflowIn{
		Name:       "Small only",
		EntityType: models.EntityTypeExpense,
		Levels: []models.ApprovalLevel{
			{LevelNumber: 1, MinAmount: models.MustNewDecimal("0"), MaxAmount: decimalPtr("100.00"), AutoApprove: true},
		},
	})
	require.NoError(t, err)

	_, err = h.services.Approval.Submit(context.Background(), models.SubmitForApprovalIn{
		WorkflowID: wf.ID,
		EntityID:   "EXP-1",
		Amount:     models.MustNewDecimal("100.01"),
	})
	assert.ErrorIs(t, err, common.ErrNoMatchingApprovalLevel)
}

func TestApprovalService_Decide(t *testing.T) {
	type step struct {
		approverID string
		role       string
		decision   models.DecisionKind
		wantErr    error
		wantStatus models.ApprovalStatus
	}

	tests := []struct {
		name   string
		amount string
		steps  []step
	}{
		{
			name:   "single approver with the right role",
			amount: "1200.00",
			steps: []step{
				{approverID: "u-1", role: "associate", decision: models.DecisionApprove, wantErr: common.ErrApproverNotEligible},
				{approverID: "u-2", role: "manager", decision: models.DecisionApprove, wantStatus: models.ApprovalStatusApproved},
				{approverID: "u-3", role: "manager", decision: models.DecisionApprove, wantErr: common.ErrApprovalRequestClosed},
			},
		},
		{
			name:   "rejection closes the request",
			amount: "1200.00",
			steps: []step{
				{approverID: "u-2", role: "manager", decision: models.DecisionReject, wantStatus: models.ApprovalStatusRejected},
				{approverID: "u-3", role: "manager", decision: models.DecisionApprove, wantErr: common.ErrApprovalRequestClosed},
			},
		},
		{
			name:   "escalation closes the request",
			amount: "1200.00",
			steps: []step{
				{approverID: "u-2", role: "manager", decision: models.DecisionEscalate, wantStatus: models.ApprovalStatusEscalated},
			},
		},
		{
			name:   "require all waits for every listed approver",
			amount: "9000.00",
			steps: []step{
				{approverID: "p-9", role: "partner", decision: models.DecisionApprove, wantErr: common.ErrApproverNotEligible},
				{approverID: "p-1", role: "partner", decision: models.DecisionApprove, wantStatus: models.ApprovalStatusPending},
				{approverID: "p-1", role: "partner", decision: models.DecisionApprove, wantErr: common.ErrDuplicateDecision},
				{approverID: "p-2", role: "partner", decision: models.DecisionApprove, wantStatus: models.ApprovalStatusApproved},
			},
		},
		{
			name:   "invalid decision",
			amount: "1200.00",
			steps: []step{
				{approverID: "u-2", role: "manager", decision: "maybe", wantErr: common.ErrInvalidDecision},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			ctx := context.Background()
			wf := h.newWorkflow(t, models.EntityTypeExpense)

			req, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{
				WorkflowID: wf.ID,
				EntityID:   "EXP-1",
				Amount:     models.MustNewDecimal(tc.amount),
			})
			require.NoError(t, err)

			for _, s := range tc.steps {
				out, err := h.services.Approval.Decide(ctx, models.DecideApprovalIn{
					RequestID:    req.ID,
					ApproverID:   s.approverID,
					ApproverRole: s.role,
					Decision:     s.decision,
				})
				if s.wantErr != nil {
					assert.ErrorIs(t, err, s.wantErr)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, s.wantStatus, out.Status)
			}
		})
	}
}

func TestApprovalService_Decide_PersistsDecisions(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()
	wf := h.newWorkflow(t, models.EntityTypeExpense)

	req, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: "EXP-1", Amount: models.MustNewDecimal("9000.00")})
	require.NoError(t, err)

	_, err = h.services.Approval.Decide(ctx, models.DecideApprovalIn{RequestID: req.ID, ApproverID: "p-1", ApproverRole: "partner", Decision: models.DecisionApprove, Comment: "ok"})
	require.NoError(t, err)

	stored, err := h.services.Approval.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, stored.Decisions, 1)
	assert.Equal(t, "p-1", stored.Decisions[0].ApproverID)
	assert.Equal(t, models.ApprovalStatusPending, stored.Status)

	_, err = h.services.Approval.GetRequest(ctx, "AR-missing")
	assert.ErrorIs(t, err, common.ErrApprovalRequestNotFound)
}

func TestApprovalService_VendorBill(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	account := h.newAccount(t)
	ledger := h.newLedger(t, account.ID, "C-1")
	wf := h.newWorkflow(t, models.EntityTypeVendorBill)

	small := h.newBill(t, account.ID, ledger.ID, "V-1", "120.00")
	large := h.newBill(t, account.ID, ledger.ID, "V-2", "2500.00")

	_, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: small.ID, Amount: small.Amount})
	require.NoError(t, err)

	bill, err := h.services.VendorBill.GetByID(ctx, small.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VendorBillStatusApproved, bill.Status, "auto approved level approves the bill")

	req, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: large.ID, Amount: large.Amount})
	require.NoError(t, err)

	bill, err = h.services.VendorBill.GetByID(ctx, large.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VendorBillStatusPendingApproval, bill.Status)

	_, err = h.services.Approval.Decide(ctx, models.DecideApprovalIn{RequestID: req.ID, ApproverID: "m-1", ApproverRole: "manager", Decision: models.DecisionApprove})
	require.NoError(t, err)

	bill, err = h.services.VendorBill.GetByID(ctx, large.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VendorBillStatusApproved, bill.Status)

	_, err = h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: "VB-missing", Amount: models.MustNewDecimal("10.00")})
	assert.ErrorIs(t, err, common.ErrVendorBillNotFound)
}

func TestApprovalService_Submit_VendorBillGuards(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		doSetup    func(t *testing.T, h *testServiceHelper, wf *models.ApprovalWorkflow, bill *models.VendorBill)
		submit     string
		wantErr    error
		wantStatus models.VendorBillStatus
	}{
		{
			name:       "amount below the balance due",
			amount:     "9000.00",
			submit:     "1.00",
			wantErr:    common.ErrApprovalAmountMismatch,
			wantStatus: models.VendorBillStatusDraft,
		},
		{
			name:       "amount above the balance due",
			amount:     "120.00",
			submit:     "600.00",
			wantErr:    common.ErrApprovalAmountMismatch,
			wantStatus: models.VendorBillStatusDraft,
		},
		{
			name:   "already pending",
			amount: "9000.00",
			doSetup: func(t *testing.T, h *testServiceHelper, wf *models.ApprovalWorkflow, bill *models.VendorBill) {
				_, err := h.services.Approval.Submit(context.Background(), models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: bill.ID, Amount: bill.Amount})
				require.NoError(t, err)
			},
			submit:     "9000.00",
			wantErr:    common.ErrBillNotAwaitingApproval,
			wantStatus: models.VendorBillStatusPendingApproval,
		},
		{
			name:   "rejected bill cannot be resubmitted",
			amount: "9000.00",
			doSetup: func(t *testing.T, h *testServiceHelper, wf *models.ApprovalWorkflow, bill *models.VendorBill) {
				ctx := context.Background()
				req, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: bill.ID, Amount: bill.Amount})
				require.NoError(t, err)
				_, err = h.services.Approval.Decide(ctx, models.DecideApprovalIn{RequestID: req.ID, ApproverID: "p-1", ApproverRole: "partner", Decision: models.DecisionReject})
				require.NoError(t, err)
			},
			submit:     "9000.00",
			wantErr:    common.ErrBillNotAwaitingApproval,
			wantStatus: models.VendorBillStatusRejected,
		},
		{
			name:   "escalated bill goes back to draft",
			amount: "1200.00",
			doSetup: func(t *testing.T, h *testServiceHelper, wf *models.ApprovalWorkflow, bill *models.VendorBill) {
				ctx := context.Background()
				req, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: bill.ID, Amount: bill.Amount})
				require.NoError(t, err)
				_, err = h.services.Approval.Decide(ctx, models.DecideApprovalIn{RequestID: req.ID, ApproverID: "m-1", ApproverRole: "manager", Decision: models.DecisionEscalate})
				require.NoError(t, err)
			},
			submit:     "1200.00",
			wantStatus: models.VendorBillStatusPendingApproval,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			ctx := context.Background()

			account := h.newAccount(t)
			ledger := h.newLedger(t, account.ID, "C-1")
			h.post(t, account.ID, ledger.ID, models.TransactionKindDeposit, "10000.00")
			wf := h.newWorkflow(t, models.EntityTypeVendorBill)
			bill := h.newBill(t, account.ID, ledger.ID, "V-1", tc.amount)

			if tc.doSetup != nil {
				tc.doSetup(t, h, wf, bill)
			}

			_, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{
				WorkflowID: wf.ID,
				EntityID:   bill.ID,
				Amount:     models.MustNewDecimal(tc.submit),
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			got, err := h.services.VendorBill.GetByID(ctx, bill.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)

			_, err = h.services.CheckRun.Create(ctx, models.CreateCheckRunIn{TrustAccountID: account.ID, PayableIDs: []string{bill.ID}})
			assert.ErrorIs(t, err, common.ErrPayableNotEligible, "a bill without sign-off is never paid")
			assert.Equal(t, "10000.00", h.ledgerBalance(t, ledger.ID))
		})
	}
}

func TestApprovalService_Decide_ConcurrentApprovers(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()
	wf := h.newWorkflow(t, models.EntityTypeExpense)

	req, err := h.services.Approval.Submit(ctx, models.SubmitForApprovalIn{WorkflowID: wf.ID, EntityID: "EXP-1", Amount: models.MustNewDecimal("9000.00")})
	require.NoError(t, err)
	require.True(t, req.RequireAll)

	var wg sync.WaitGroup
	for _, approverID := range []string{"p-1", "p-2"} {
		wg.Add(1)
		go func(approverID string) {
			defer wg.Done()
			_, err := h.services.Approval.Decide(ctx, models.DecideApprovalIn{
				RequestID:    req.ID,
				ApproverID:   approverID,
				ApproverRole: "partner",
				Decision:     models.DecisionApprove,
			})
			assert.NoError(t, err)
		}(approverID)
	}
	wg.Wait()

	stored, err := h.services.Approval.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, stored.Status)
	require.Len(t, stored.Decisions, 2)
	assert.ElementsMatch(t, []string{"p-1", "p-2"}, []string{stored.Decisions[0].ApproverID, stored.Decisions[1].ApproverID})
}
