package models

import (
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

const (
	kindClientLedger = "clientLedger"

	// UnallocatedClientID identifies the ledger that holds trust funds not yet assigned to a client.
	UnallocatedClientID = "UNALLOCATED"
)

type ClientLedger struct {
	ID             string
	TrustAccountID string
	ClientID       string
	MatterID       string
	Balance        Decimal
	IsUnallocated  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ApplySigned moves the ledger balance by signed. A client ledger never goes below zero.
func (l *ClientLedger) ApplySigned(signed Decimal) error {
	next := l.Balance.Add(signed)
	if next.IsNegative() {
		return common.ErrInsufficientBalance
	}
	l.Balance = next
	return nil
}

func (l ClientLedger) ToModelResponse() ClientLedgerOut {
	return ClientLedgerOut{
		Kind:           kindClientLedger,
		ID:             l.ID,
		TrustAccountID: l.TrustAccountID,
		ClientID:       l.ClientID,
		MatterID:       l.MatterID,
		Balance:        l.Balance.StringFixed(MinorUnitPlaces),
		IsUnallocated:  l.IsUnallocated,
		CreatedAt:      l.CreatedAt,
	}
}

type CreateClientLedgerIn struct {
	TrustAccountID string
	ClientID       string
	MatterID       string
}

type CreateClientLedgerRequest struct {
	ClientID string `json:"clientId" validate:"required,max=64"`
	MatterID string `json:"matterId" validate:"max=64"`
}

type ClientLedgerOut struct {
	Kind           string    `json:"kind"`
	ID             string    `json:"id"`
	TrustAccountID string    `json:"trustAccountId"`
	ClientID       string    `json:"clientId"`
	MatterID       string    `json:"matterId,omitempty"`
	Balance        string    `json:"balance"`
	IsUnallocated  bool      `json:"isUnallocated"`
	CreatedAt      time.Time `json:"createdAt"`
}
