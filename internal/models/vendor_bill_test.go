package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

func TestVendorBill_CheckSubmittable(t *testing.T) {
	tests := []struct {
		name    string
		status  VendorBillStatus
		amount  string
		wantErr error
	}{
		{name: "draft for full balance", status: VendorBillStatusDraft, amount: "250.00"},
		{name: "draft for a lower amount", status: VendorBillStatusDraft, amount: "1.00", wantErr: common.ErrApprovalAmountMismatch},
		{name: "pending approval", status: VendorBillStatusPendingApproval, amount: "250.00", wantErr: common.ErrBillNotAwaitingApproval},
		{name: "rejected", status: VendorBillStatusRejected, amount: "250.00", wantErr: common.ErrBillNotAwaitingApproval},
		{name: "paid", status: VendorBillStatusPaid, amount: "250.00", wantErr: common.ErrBillNotAwaitingApproval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := VendorBill{Status: tt.status, Amount: MustNewDecimal("250.00"), BalanceDue: MustNewDecimal("250.00")}

			err := b.CheckSubmittable(MustNewDecimal(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVendorBill_ApplyApprovalStatus(t *testing.T) {
	at := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		from        VendorBillStatus
		status      ApprovalStatus
		want        VendorBillStatus
		wantChanged bool
	}{
		{name: "auto approved draft", from: VendorBillStatusDraft, status: ApprovalStatusApproved, want: VendorBillStatusApproved, wantChanged: true},
		{name: "submitted draft", from: VendorBillStatusDraft, status: ApprovalStatusPending, want: VendorBillStatusPendingApproval, wantChanged: true},
		{name: "approved after sign-off", from: VendorBillStatusPendingApproval, status: ApprovalStatusApproved, want: VendorBillStatusApproved, wantChanged: true},
		{name: "rejected", from: VendorBillStatusPendingApproval, status: ApprovalStatusRejected, want: VendorBillStatusRejected, wantChanged: true},
		{name: "escalated", from: VendorBillStatusPendingApproval, status: ApprovalStatusEscalated, want: VendorBillStatusDraft, wantChanged: true},
		{name: "paid bill is left alone", from: VendorBillStatusPaid, status: ApprovalStatusApproved, want: VendorBillStatusPaid},
		{name: "rejected bill is not approved", from: VendorBillStatusRejected, status: ApprovalStatusApproved, want: VendorBillStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := VendorBill{Status: tt.from}

			changed := b.ApplyApprovalStatus(tt.status, at)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, b.Status)
			if changed {
				assert.Equal(t, at, b.UpdatedAt)
			}
		})
	}
}
