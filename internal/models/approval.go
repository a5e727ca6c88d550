package models

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

const (
	kindApprovalWorkflow = "approvalWorkflow"
	kindApprovalRequest  = "approvalRequest"
)

type EntityType string

const (
	EntityTypeExpense    EntityType = "expense"
	EntityTypeVendorBill EntityType = "vendor_bill"
	EntityTypeInvoice    EntityType = "invoice"
)

type ApprovalStatus string

const (
	ApprovalStatusPending   ApprovalStatus = "pending"
	ApprovalStatusApproved  ApprovalStatus = "approved"
	ApprovalStatusRejected  ApprovalStatus = "rejected"
	ApprovalStatusEscalated ApprovalStatus = "escalated"
)

type DecisionKind string

const (
	DecisionApprove  DecisionKind = "approve"
	DecisionReject   DecisionKind = "reject"
	DecisionEscalate DecisionKind = "escalate"
)

func (d DecisionKind) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionEscalate:
		return true
	}
	return false
}

type ApprovalWorkflow struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	EntityType EntityType      `json:"entityType"`
	Levels     []ApprovalLevel `json:"levels"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type ApprovalLevel struct {
	LevelNumber int      `json:"levelNumber"`
	MinAmount   Decimal  `json:"minAmount"`
	MaxAmount   *Decimal `json:"maxAmount"`
	// ApproverRole empty means any member may decide.
	ApproverRole string `json:"approverRole"`
	// Approvers lists member ids that must sign off when RequireAll is set.
	Approvers   []string `json:"approvers"`
	RequireAll  bool     `json:"requireAll"`
	AutoApprove bool     `json:"autoApprove"`
}

func (l ApprovalLevel) Contains(amount Decimal) bool {
	if amount.LessThan(l.MinAmount.Decimal) {
		return false
	}
	return l.MaxAmount == nil || amount.LessThanOrEqual(l.MaxAmount.Decimal)
}

// SortLevels orders levels ascending by level number, in place.
func SortLevels(levels []ApprovalLevel) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].LevelNumber < levels[j].LevelNumber
	})
}

// ValidateLevels checks a level set before it is stored: numbering starts at 1 without gaps,
// ranges are well formed and every requireAll level names its approvers.
func ValidateLevels(levels []ApprovalLevel) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", common.ErrInvalidApprovalLevels)
	}

	sorted := slices.Clone(levels)
	SortLevels(sorted)
	for i, l := range sorted {
		if l.LevelNumber != i+1 {
			return fmt.Errorf("%w: level numbers must start at 1 and be consecutive", common.ErrInvalidApprovalLevels)
		}
		if l.MinAmount.IsNegative() || !l.MinAmount.HasMinorUnitPrecision() {
			return fmt.Errorf("%w: level %d has an invalid minAmount", common.ErrInvalidApprovalLevels, l.LevelNumber)
		}
		if l.MaxAmount != nil && (l.MaxAmount.LessThan(l.MinAmount.Decimal) || !l.MaxAmount.HasMinorUnitPrecision()) {
			return fmt.Errorf("%w: level %d has an invalid maxAmount", common.ErrInvalidApprovalLevels, l.LevelNumber)
		}
		if l.RequireAll && !l.AutoApprove && len(l.Approvers) == 0 {
			return fmt.Errorf("%w: level %d requires all approvers but lists none", common.ErrInvalidApprovalLevels, l.LevelNumber)
		}
	}
	return nil
}

// MatchLevel returns the first level, ascending by level number, whose range contains amount.
func (w ApprovalWorkflow) MatchLevel(amount Decimal) (ApprovalLevel, error) {
	levels := slices.Clone(w.Levels)
	SortLevels(levels)
	for _, l := range levels {
		if l.Contains(amount) {
			return l, nil
		}
	}
	return ApprovalLevel{}, common.ErrNoMatchingApprovalLevel
}

func (w ApprovalWorkflow) ToModelResponse() ApprovalWorkflowOut {
	levels := make([]ApprovalLevelOut, 0, len(w.Levels))
	for _, l := range w.Levels {
		var maxAmount *string
		if l.MaxAmount != nil {
			v := l.MaxAmount.StringFixed(MinorUnitPlaces)
			maxAmount = &v
		}
		levels = append(levels, ApprovalLevelOut{
			LevelNumber:  l.LevelNumber,
			MinAmount:    l.MinAmount.StringFixed(MinorUnitPlaces),
			MaxAmount:    maxAmount,
			ApproverRole: l.ApproverRole,
			Approvers:    l.Approvers,
			RequireAll:   l.RequireAll,
			AutoApprove:  l.AutoApprove,
		})
	}
	return ApprovalWorkflowOut{
		Kind:       kindApprovalWorkflow,
		ID:         w.ID,
		Name:       w.Name,
		EntityType: string(w.EntityType),
		Levels:     levels,
		CreatedAt:  w.CreatedAt,
	}
}

// ApprovalRequest keeps a snapshot of the level it matched, so later workflow edits never change it.
type ApprovalRequest struct {
	ID                string
	WorkflowID        string
	EntityType        EntityType
	EntityID          string
	Amount            Decimal
	CurrentLevel      int
	ApproverRole      string
	EligibleApprovers []string
	RequireAll        bool
	Status            ApprovalStatus
	Decisions         []ApprovalDecision
	DecidedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ApprovalDecision struct {
	ID           string
	RequestID    string
	ApproverID   string
	ApproverRole string
	Decision     DecisionKind
	Comment      string
	CreatedAt    time.Time
}

// NewApprovalRequest applies the matched level; an autoApprove level closes the request at once.
func NewApprovalRequest(id string, wf ApprovalWorkflow, level ApprovalLevel, entityID string, amount Decimal, now time.Time) ApprovalRequest {
	req := ApprovalRequest{
		ID:                id,
		WorkflowID:        wf.ID,
		EntityType:        wf.EntityType,
		EntityID:          entityID,
		Amount:            amount,
		CurrentLevel:      level.LevelNumber,
		ApproverRole:      level.ApproverRole,
		EligibleApprovers: slices.Clone(level.Approvers),
		RequireAll:        level.RequireAll,
		Status:            ApprovalStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if level.AutoApprove {
		req.Status = ApprovalStatusApproved
		req.DecidedAt = &now
	}
	return req
}

func (r ApprovalRequest) IsClosed() bool {
	return r.Status != ApprovalStatusPending
}

// CheckEligible reports whether approverID holding role may decide on the request now.
func (r ApprovalRequest) CheckEligible(approverID, role string) error {
	if r.IsClosed() {
		return common.ErrApprovalRequestClosed
	}
	if r.ApproverRole != "" && r.ApproverRole != role {
		return common.ErrApproverNotEligible
	}
	if len(r.EligibleApprovers) > 0 && !slices.Contains(r.EligibleApprovers, approverID) {
		return common.ErrApproverNotEligible
	}
	for _, d := range r.Decisions {
		if d.ApproverID == approverID {
			return common.ErrDuplicateDecision
		}
	}
	return nil
}

// Apply records d and recomputes the status. Decisions are append only.
func (r *ApprovalRequest) Apply(d ApprovalDecision) error {
	if !d.Decision.IsValid() {
		return common.ErrInvalidDecision
	}
	if err := r.CheckEligible(d.ApproverID, d.ApproverRole); err != nil {
		return err
	}

	r.Decisions = append(r.Decisions, d)
	r.UpdatedAt = d.CreatedAt

	switch d.Decision {
	case DecisionReject:
		r.Status = ApprovalStatusRejected
	case DecisionEscalate:
		r.Status = ApprovalStatusEscalated
	case DecisionApprove:
		if !r.RequireAll || r.allApproved() {
			r.Status = ApprovalStatusApproved
		}
	}
	if r.IsClosed() {
		r.DecidedAt = &d.CreatedAt
	}
	return nil
}

func (r ApprovalRequest) allApproved() bool {
	approved := make(map[string]struct{}, len(r.Decisions))
	for _, d := range r.Decisions {
		if d.Decision == DecisionApprove {
			approved[d.ApproverID] = struct{}{}
		}
	}
	for _, id := range r.EligibleApprovers {
		if _, ok := approved[id]; !ok {
			return false
		}
	}
	return true
}

func (r ApprovalRequest) ToModelResponse() ApprovalRequestOut {
	decisions := make([]ApprovalDecisionOut, 0, len(r.Decisions))
	for _, d := range r.Decisions {
		decisions = append(decisions, ApprovalDecisionOut{
			ApproverID:   d.ApproverID,
			ApproverRole: d.ApproverRole,
			Decision:     string(d.Decision),
			Comment:      d.Comment,
			CreatedAt:    d.CreatedAt,
		})
	}
	return ApprovalRequestOut{
		Kind:              kindApprovalRequest,
		ID:                r.ID,
		WorkflowID:        r.WorkflowID,
		EntityType:        string(r.EntityType),
		EntityID:          r.EntityID,
		Amount:            r.Amount.StringFixed(MinorUnitPlaces),
		CurrentLevel:      r.CurrentLevel,
		ApproverRole:      r.ApproverRole,
		EligibleApprovers: r.EligibleApprovers,
		RequireAll:        r.RequireAll,
		Status:            string(r.Status),
		Decisions:         decisions,
		DecidedAt:         r.DecidedAt,
		CreatedAt:         r.CreatedAt,
	}
}

type CreateApprovalWorkflowIn struct {
	Name       string
	EntityType EntityType
	Levels     []ApprovalLevel
}

type SubmitForApprovalIn struct {
	WorkflowID string
	EntityID   string
	Amount     Decimal
}

type DecideApprovalIn struct {
	RequestID    string
	ApproverID   string
	ApproverRole string
	Decision     DecisionKind
	Comment      string
}

type CreateApprovalWorkflowRequest struct {
	Name       string                 `json:"name" validate:"required,max=100,noStartEndSpaces"`
	EntityType string                 `json:"entityType" validate:"required,oneof=expense vendor_bill invoice"`
	Levels     []ApprovalLevelRequest `json:"levels" validate:"required,min=1,dive"`
}

type ApprovalLevelRequest struct {
	LevelNumber  int      `json:"levelNumber" validate:"required,min=1"`
	MinAmount    Decimal  `json:"minAmount" validate:"moneyPrecision"`
	MaxAmount    *Decimal `json:"maxAmount" validate:"omitempty,moneyPrecision"`
	ApproverRole string   `json:"approverRole" validate:"max=50"`
	Approvers    []string `json:"approvers" validate:"omitempty,dive,required"`
	RequireAll   bool     `json:"requireAll"`
	AutoApprove  bool     `json:"autoApprove"`
}

func (r CreateApprovalWorkflowRequest) ToCreateApprovalWorkflowIn() CreateApprovalWorkflowIn {
	levels := make([]ApprovalLevel, 0, len(r.Levels))
	for _, l := range r.Levels {
		levels = append(levels, ApprovalLevel(l))
	}
	return CreateApprovalWorkflowIn{
		Name:       r.Name,
		EntityType: EntityType(r.EntityType),
		Levels:     levels,
	}
}

type SubmitForApprovalRequest struct {
	WorkflowID string  `json:"workflowId" validate:"required"`
	EntityID   string  `json:"entityId" validate:"required"`
	Amount     Decimal `json:"amount" validate:"decimalGreaterThan=0,moneyPrecision"`
}

type DecideApprovalRequest struct {
	ApproverID   string `json:"approverId" validate:"required,max=64"`
	ApproverRole string `json:"approverRole" validate:"max=50"`
	Decision     string `json:"decision" validate:"required,oneof=approve reject escalate"`
	Comment      string `json:"comment" validate:"max=255"`
}

type ListApprovalWorkflowsRequest struct {
	EntityType string `query:"entityType" json:"entityType" validate:"omitempty,oneof=expense vendor_bill invoice"`
}

type ApprovalWorkflowOut struct {
	Kind       string             `json:"kind"`
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	EntityType string             `json:"entityType"`
	Levels     []ApprovalLevelOut `json:"levels"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type ApprovalLevelOut struct {
	LevelNumber  int      `json:"levelNumber"`
	MinAmount    string   `json:"minAmount"`
	MaxAmount    *string  `json:"maxAmount"`
	ApproverRole string   `json:"approverRole"`
	Approvers    []string `json:"approvers"`
	RequireAll   bool     `json:"requireAll"`
	AutoApprove  bool     `json:"autoApprove"`
}

type ApprovalRequestOut struct {
	Kind              string                `json:"kind"`
	ID                string                `json:"id"`
	WorkflowID        string                `json:"workflowId"`
	EntityType        string                `json:"entityType"`
	EntityID          string                `json:"entityId"`
	Amount            string                `json:"amount"`
	CurrentLevel      int                   `json:"currentLevel"`
	ApproverRole      string                `json:"approverRole"`
	EligibleApprovers []string              `json:"eligibleApprovers"`
	RequireAll        bool                  `json:"requireAll"`
	Status            string                `json:"status"`
	Decisions         []ApprovalDecisionOut `json:"decisions"`
	DecidedAt         *time.Time            `json:"decidedAt"`
	CreatedAt         time.Time             `json:"createdAt"`
}

type ApprovalDecisionOut struct {
	ApproverID   string    `json:"approverId"`
	ApproverRole string    `json:"approverRole"`
	Decision     string    `json:"decision"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
