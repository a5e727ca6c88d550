package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

func decimalPtr(v string) *Decimal {
	d := MustNewDecimal(v)
	return &d
}

func TestValidateLevels(t *testing.T) {
	tests := []struct {
		name    string
		levels  []ApprovalLevel
		wantErr bool
	}{
		{
			name: "valid unordered levels",
			levels: []ApprovalLevel{
				{LevelNumber: 2, MinAmount: MustNewDecimal("1000.01")},
				{LevelNumber: 1, MinAmount: MustNewDecimal("0"), MaxAmount: decimalPtr("1000")},
			},
		},
		{
			name:    "empty",
			wantErr: true,
		},
		{
			name: "gap in numbering",
			levels: []ApprovalLevel{
				{LevelNumber: 1, MinAmount: MustNewDecimal("0")},
				{LevelNumber: 3, MinAmount: MustNewDecimal("10")},
			},
			wantErr: true,
		},
		{
			name:    "max below min",
			levels:  []ApprovalLevel{{LevelNumber: 1, MinAmount: MustNewDecimal("10"), MaxAmount: decimalPtr("5")}},
			wantErr: true,
		},
		{
			name:    "sub cent min",
			levels:  []ApprovalLevel{{LevelNumber: 1, MinAmount: MustNewDecimal("0.001")}},
			wantErr: true,
		},
		{
			name:    "require all without approvers",
			levels:  []ApprovalLevel{{LevelNumber: 1, MinAmount: MustNewDecimal("0"), RequireAll: true}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLevels(tt.levels)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidApprovalLevels)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApprovalWorkflow_MatchLevel(t *testing.T) {
	wf := ApprovalWorkflow{
		Levels: []ApprovalLevel{
			{LevelNumber: 2, MinAmount: MustNewDecimal("1000.01"), MaxAmount: decimalPtr("10000"), ApproverRole: "partner"},
			{LevelNumber: 1, MinAmount: MustNewDecimal("0.01"), MaxAmount: decimalPtr("1000"), AutoApprove: true},
		},
	}

	tests := []struct {
		amount    string
		wantLevel int
		wantErr   error
	}{
		{amount: "0.01", wantLevel: 1},
		{amount: "1000", wantLevel: 1},
		{amount: "1000.01", wantLevel: 2},
		{amount: "10000", wantLevel: 2},
		{amount: "10000.01", wantErr: common.ErrNoMatchingApprovalLevel},
		{amount: "0", wantErr: common.ErrNoMatchingApprovalLevel},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			level, err := wf.MatchLevel(MustNewDecimal(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, level.LevelNumber)
		})
	}
}

func TestNewApprovalRequest_AutoApprove(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	wf := ApprovalWorkflow{ID: "WF-1", EntityType: EntityTypeExpense}

	req := NewApprovalRequest("AR-1", wf, ApprovalLevel{LevelNumber: 1, AutoApprove: true}, "EXP-1", MustNewDecimal("50"), now)

	assert.Equal(t, ApprovalStatusApproved, req.Status)
	require.NotNil(t, req.DecidedAt)
	assert.True(t, req.IsClosed())
}

func TestApprovalRequest_Apply_RequireAll(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	first := created.Add(time.Hour)
	second := created.Add(2 * time.Hour)

	wf := ApprovalWorkflow{ID: "WF-1", EntityType: EntityTypeVendorBill}
	level := ApprovalLevel{LevelNumber: 2, ApproverRole: "partner", Approvers: []string{"u-1", "u-2"}, RequireAll: true}
	req := NewApprovalRequest("AR-1", wf, level, "VB-1", MustNewDecimal("5000"), created)

	require.NoError(t, req.Apply(ApprovalDecision{ID: "D-1", ApproverID: "u-1", ApproverRole: "partner", Decision: DecisionApprove, CreatedAt: first}))
	assert.Equal(t, ApprovalStatusPending, req.Status)

	assert.ErrorIs(t, req.Apply(ApprovalDecision{ApproverID: "u-1", ApproverRole: "partner", Decision: DecisionApprove}), common.ErrDuplicateDecision)
	assert.ErrorIs(t, req.Apply(ApprovalDecision{ApproverID: "u-3", ApproverRole: "partner", Decision: DecisionApprove}), common.ErrApproverNotEligible)
	assert.ErrorIs(t, req.Apply(ApprovalDecision{ApproverID: "u-2", ApproverRole: "associate", Decision: DecisionApprove}), common.ErrApproverNotEligible)
	assert.ErrorIs(t, req.Apply(ApprovalDecision{ApproverID: "u-2", ApproverRole: "partner", Decision: "maybe"}), common.ErrInvalidDecision)

	require.NoError(t, req.Apply(ApprovalDecision{ID: "D-2", ApproverID: "u-2", ApproverRole: "partner", Decision: DecisionApprove, CreatedAt: second}))

	want := ApprovalRequest{
		ID:                "AR-1",
		WorkflowID:        "WF-1",
		EntityType:        EntityTypeVendorBill,
		EntityID:          "VB-1",
		Amount:            MustNewDecimal("5000.00"),
		CurrentLevel:      2,
		ApproverRole:      "partner",
		EligibleApprovers: []string{"u-1", "u-2"},
		RequireAll:        true,
		Status:            ApprovalStatusApproved,
		Decisions: []ApprovalDecision{
			{ID: "D-1", ApproverID: "u-1", ApproverRole: "partner", Decision: DecisionApprove, CreatedAt: first},
			{ID: "D-2", ApproverID: "u-2", ApproverRole: "partner", Decision: DecisionApprove, CreatedAt: second},
		},
		DecidedAt: &second,
		CreatedAt: created,
		UpdatedAt: second,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("ApprovalRequest mismatch (-want +got):\n%s", diff)
	}

	assert.ErrorIs(t, req.Apply(ApprovalDecision{ApproverID: "u-2", ApproverRole: "partner", Decision: DecisionReject}), common.ErrApprovalRequestClosed)
}

func TestApprovalRequest_Apply_RejectAndEscalateClose(t *testing.T) {
	for _, decision := range []DecisionKind{DecisionReject, DecisionEscalate} {
		t.Run(string(decision), func(t *testing.T) {
			req := ApprovalRequest{Status: ApprovalStatusPending}

			require.NoError(t, req.Apply(ApprovalDecision{ApproverID: "u-1", Decision: decision}))
			assert.True(t, req.IsClosed())
			assert.NotNil(t, req.DecidedAt)
		})
	}
}
