package models

import (
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

const (
	kindTrustAccount   = "trustAccount"
	kindAccountSummary = "trustAccountSummary"
	kindAccountBalance = "trustAccountBalance"
)

type TrustAccount struct {
	ID                 string
	Name               string
	BankAccountRef     string
	Currency           string
	Jurisdiction       string
	BookBalance        Decimal
	IsActive           bool
	LastReconciledDate *time.Time
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (a *TrustAccount) ApplySigned(signed Decimal) {
	a.BookBalance = a.BookBalance.Add(signed)
}

func (a TrustAccount) ToModelResponse() TrustAccountOut {
	return TrustAccountOut{
		Kind:               kindTrustAccount,
		ID:                 a.ID,
		Name:               a.Name,
		BankAccountRef:     a.BankAccountRef,
		Currency:           a.Currency,
		Jurisdiction:       a.Jurisdiction,
		BookBalance:        a.BookBalance.StringFixed(MinorUnitPlaces),
		IsActive:           a.IsActive,
		LastReconciledDate: formatNullableDate(a.LastReconciledDate),
		CreatedAt:          a.CreatedAt,
	}
}

type CreateTrustAccountIn struct {
	Name           string
	BankAccountRef string
	Currency       string
	Jurisdiction   string
}

type CreateTrustAccountRequest struct {
	Name           string `json:"name" validate:"required,max=100,noStartEndSpaces"`
	BankAccountRef string `json:"bankAccountRef" validate:"required,max=50"`
	Currency       string `json:"currency" validate:"omitempty,len=3,alpha"`
	Jurisdiction   string `json:"jurisdiction" validate:"max=50"`
}

type TrustAccountOut struct {
	Kind               string    `json:"kind"`
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	BankAccountRef     string    `json:"bankAccountRef"`
	Currency           string    `json:"currency"`
	Jurisdiction       string    `json:"jurisdiction"`
	BookBalance        string    `json:"bookBalance"`
	IsActive           bool      `json:"isActive"`
	LastReconciledDate *string   `json:"lastReconciledDate"`
	CreatedAt          time.Time `json:"createdAt"`
}

type AccountSummary struct {
	TrustAccountID     string
	Currency           string
	Balance            Decimal
	LedgerCount        int
	LastReconciledDate *time.Time
}

func (s AccountSummary) ToModelResponse() AccountSummaryOut {
	return AccountSummaryOut{
		Kind:               kindAccountSummary,
		TrustAccountID:     s.TrustAccountID,
		Currency:           s.Currency,
		Balance:            s.Balance.StringFixed(MinorUnitPlaces),
		LedgerCount:        s.LedgerCount,
		LastReconciledDate: formatNullableDate(s.LastReconciledDate),
	}
}

type AccountSummaryOut struct {
	Kind               string  `json:"kind"`
	TrustAccountID     string  `json:"trustAccountId"`
	Currency           string  `json:"currency"`
	Balance            string  `json:"balance"`
	LedgerCount        int     `json:"ledgerCount"`
	LastReconciledDate *string `json:"lastReconciledDate"`
}

type AccountBalanceOut struct {
	Kind           string `json:"kind"`
	TrustAccountID string `json:"trustAccountId"`
	Balance        string `json:"balance"`
}

func NewAccountBalanceOut(trustAccountID string, balance Decimal) AccountBalanceOut {
	return AccountBalanceOut{
		Kind:           kindAccountBalance,
		TrustAccountID: trustAccountID,
		Balance:        balance.StringFixed(MinorUnitPlaces),
	}
}

func formatNullableDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(common.DateFormatYYYYMMDD)
	return &s
}
