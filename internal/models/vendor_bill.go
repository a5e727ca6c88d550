package models

import (
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

const kindVendorBill = "vendorBill"

type VendorBillStatus string

const (
	VendorBillStatusDraft           VendorBillStatus = "draft"
	VendorBillStatusPendingApproval VendorBillStatus = "pending_approval"
	VendorBillStatusApproved        VendorBillStatus = "approved"
	VendorBillStatusRejected        VendorBillStatus = "rejected"
	VendorBillStatusPaid            VendorBillStatus = "paid"
)

type VendorBill struct {
	ID             string
	TrustAccountID string
	// ClientLedgerID is the sub-ledger the payment is drawn from; empty means unallocated funds.
	ClientLedgerID string
	VendorID       string
	PayeeName      string
	Reference      string
	Amount         Decimal
	BalanceDue     Decimal
	Status         VendorBillStatus
	CheckRunID     string
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CheckEligible returns the reason bill cannot be paid from trustAccountID, or nil.
func (b VendorBill) CheckEligible(trustAccountID string) error {
	if b.Status == VendorBillStatusPaid {
		return common.ErrAlreadyPaid
	}
	if b.Status != VendorBillStatusApproved || !b.BalanceDue.IsPositive() || b.TrustAccountID != trustAccountID {
		return common.ErrPayableNotEligible
	}
	return nil
}

func (b *VendorBill) MarkPaid(checkRunID string, at time.Time) {
	b.Status = VendorBillStatusPaid
	b.BalanceDue = Decimal{}
	b.CheckRunID = checkRunID
	b.PaidAt = &at
	b.UpdatedAt = at
}

// CheckSubmittable returns the reason bill cannot be submitted for approval of amount, or nil.
// Only a draft can be submitted, and only for its full balance due.
func (b VendorBill) CheckSubmittable(amount Decimal) error {
	if b.Status != VendorBillStatusDraft {
		return common.ErrBillNotAwaitingApproval
	}
	if !amount.Equal(b.BalanceDue) {
		return common.ErrApprovalAmountMismatch
	}
	return nil
}

// ApplyApprovalStatus moves the bill along with the status of its approval request.
// It reports whether the bill changed.
func (b *VendorBill) ApplyApprovalStatus(status ApprovalStatus, at time.Time) bool {
	next := b.Status
	switch status {
	case ApprovalStatusApproved:
		if b.Status == VendorBillStatusDraft || b.Status == VendorBillStatusPendingApproval {
			next = VendorBillStatusApproved
		}
	case ApprovalStatusPending:
		if b.Status == VendorBillStatusDraft {
			next = VendorBillStatusPendingApproval
		}
	case ApprovalStatusRejected:
		if b.Status == VendorBillStatusPendingApproval {
			next = VendorBillStatusRejected
		}
	case ApprovalStatusEscalated:
		// back to draft, a new request goes to the escalated authority
		if b.Status == VendorBillStatusPendingApproval {
			next = VendorBillStatusDraft
		}
	}
	if next == b.Status {
		return false
	}
	b.Status = next
	b.UpdatedAt = at
	return true
}

func (b VendorBill) ToModelResponse() VendorBillOut {
	return VendorBillOut{
		Kind:           kindVendorBill,
		ID:             b.ID,
		TrustAccountID: b.TrustAccountID,
		ClientLedgerID: b.ClientLedgerID,
		VendorID:       b.VendorID,
		PayeeName:      b.PayeeName,
		Reference:      b.Reference,
		Amount:         b.Amount.StringFixed(MinorUnitPlaces),
		BalanceDue:     b.BalanceDue.StringFixed(MinorUnitPlaces),
		Status:         string(b.Status),
		CheckRunID:     b.CheckRunID,
		PaidAt:         b.PaidAt,
		CreatedAt:      b.CreatedAt,
	}
}

type CreateVendorBillIn struct {
	TrustAccountID string
	ClientLedgerID string
	VendorID       string
	PayeeName      string
	Reference      string
	Amount         Decimal
}

type CreateVendorBillRequest struct {
	TrustAccountID string  `json:"trustAccountId" validate:"required"`
	ClientLedgerID string  `json:"clientLedgerId"`
	VendorID       string  `json:"vendorId" validate:"required,max=64"`
	PayeeName      string  `json:"payeeName" validate:"required,max=100,noStartEndSpaces"`
	Reference      string  `json:"reference" validate:"max=100"`
	Amount         Decimal `json:"amount" validate:"decimalGreaterThan=0,moneyPrecision"`
}

func (r CreateVendorBillRequest) ToCreateVendorBillIn() CreateVendorBillIn {
	return CreateVendorBillIn(r)
}

type ListVendorBillsRequest struct {
	TrustAccountID string `query:"trustAccountId" json:"trustAccountId"`
	Status         string `query:"status" json:"status" validate:"omitempty,oneof=draft pending_approval approved rejected paid"`
}

type VendorBillOut struct {
	Kind           string     `json:"kind"`
	ID             string     `json:"id"`
	TrustAccountID string     `json:"trustAccountId"`
	ClientLedgerID string     `json:"clientLedgerId"`
	VendorID       string     `json:"vendorId"`
	PayeeName      string     `json:"payeeName"`
	Reference      string     `json:"reference"`
	Amount         string     `json:"amount"`
	BalanceDue     string     `json:"balanceDue"`
	Status         string     `json:"status"`
	CheckRunID     string     `json:"checkRunId,omitempty"`
	PaidAt         *time.Time `json:"paidAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}
