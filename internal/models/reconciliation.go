package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

const kindReconciliation = "reconciliation"

type ReconciliationStatus string

const (
	ReconciliationStatusInProgress ReconciliationStatus = "in_progress"
	ReconciliationStatusCompleted  ReconciliationStatus = "completed"
	ReconciliationStatusFailed     ReconciliationStatus = "failed"
)

// ReconciliationEpsilon is the largest bank/book difference still treated as balanced (exclusive).
var ReconciliationEpsilon = decimal.New(1, -2)

type Reconciliation struct {
	ID               string
	TrustAccountID   string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	BankBalance      Decimal
	BookBalance      Decimal
	LedgerBalanceSum Decimal
	Discrepancy      Decimal
	// Outstanding items are uncleared postings, reported for the operator.
	OutstandingDeposits      Decimal
	OutstandingDisbursements Decimal
	Status                   ReconciliationStatus
	FailureReason            string
	CompletedAt              *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// BalanceSnapshot is the book side of a reconciliation, read at a single point in time.
type BalanceSnapshot struct {
	BookBalance              Decimal
	LedgerBalanceSum         Decimal
	OutstandingDeposits      Decimal
	OutstandingDisbursements Decimal
}

// Capture stores snap on the reconciliation and recomputes the discrepancy against the bank balance.
func (r *Reconciliation) Capture(snap BalanceSnapshot) {
	r.BookBalance = snap.BookBalance
	r.LedgerBalanceSum = snap.LedgerBalanceSum
	r.OutstandingDeposits = snap.OutstandingDeposits
	r.OutstandingDisbursements = snap.OutstandingDisbursements
	r.Discrepancy = r.BankBalance.Sub(r.BookBalance)
}

// IsCorrupted reports a broken book invariant, which is never a plain discrepancy.
func (r Reconciliation) IsCorrupted() bool {
	return !r.BookBalance.Equal(r.LedgerBalanceSum)
}

func (r Reconciliation) IsBalanced() bool {
	return r.Discrepancy.Abs().LessThan(ReconciliationEpsilon) && !r.IsCorrupted()
}

func (r Reconciliation) IsInProgress() bool {
	return r.Status == ReconciliationStatusInProgress
}

func (r Reconciliation) ToModelResponse() ReconciliationOut {
	out := ReconciliationOut{
		Kind:                     kindReconciliation,
		ID:                       r.ID,
		TrustAccountID:           r.TrustAccountID,
		PeriodStart:              r.PeriodStart.Format(common.DateFormatYYYYMMDD),
		PeriodEnd:                r.PeriodEnd.Format(common.DateFormatYYYYMMDD),
		BankBalance:              r.BankBalance.StringFixed(MinorUnitPlaces),
		BookBalance:              r.BookBalance.StringFixed(MinorUnitPlaces),
		LedgerBalanceSum:         r.LedgerBalanceSum.StringFixed(MinorUnitPlaces),
		Discrepancy:              r.Discrepancy.StringFixed(MinorUnitPlaces),
		OutstandingDeposits:      r.OutstandingDeposits.StringFixed(MinorUnitPlaces),
		OutstandingDisbursements: r.OutstandingDisbursements.StringFixed(MinorUnitPlaces),
		Status:                   string(r.Status),
		IsBalanced:               r.IsBalanced(),
		FailureReason:            r.FailureReason,
		CompletedAt:              r.CompletedAt,
		CreatedAt:                r.CreatedAt,
	}
	return out
}

type StartReconciliationIn struct {
	TrustAccountID string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	BankBalance    Decimal
}

type StartReconciliationRequest struct {
	TrustAccountID string  `json:"trustAccountId" validate:"required"`
	PeriodStart    string  `json:"periodStart" validate:"required,date"`
	PeriodEnd      string  `json:"periodEnd" validate:"required,date"`
	BankBalance    Decimal `json:"bankBalance" validate:"moneyPrecision"`
}

func (r StartReconciliationRequest) ToStartReconciliationIn() (StartReconciliationIn, error) {
	start, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.PeriodStart)
	if err != nil {
		return StartReconciliationIn{}, err
	}
	end, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.PeriodEnd)
	if err != nil {
		return StartReconciliationIn{}, err
	}

	return StartReconciliationIn{
		TrustAccountID: r.TrustAccountID,
		PeriodStart:    start,
		PeriodEnd:      end,
		BankBalance:    r.BankBalance,
	}, nil
}

type UpdateBankBalanceRequest struct {
	BankBalance Decimal `json:"bankBalance" validate:"moneyPrecision"`
}

type ReconciliationOut struct {
	Kind                     string     `json:"kind"`
	ID                       string     `json:"id"`
	TrustAccountID           string     `json:"trustAccountId"`
	PeriodStart              string     `json:"periodStart"`
	PeriodEnd                string     `json:"periodEnd"`
	BankBalance              string     `json:"bankBalance"`
	BookBalance              string     `json:"bookBalance"`
	LedgerBalanceSum         string     `json:"ledgerBalanceSum"`
	Discrepancy              string     `json:"discrepancy"`
	OutstandingDeposits      string     `json:"outstandingDeposits"`
	OutstandingDisbursements string     `json:"outstandingDisbursements"`
	Status                   string     `json:"status"`
	IsBalanced               bool       `json:"isBalanced"`
	FailureReason            string     `json:"failureReason,omitempty"`
	CompletedAt              *time.Time `json:"completedAt"`
	CreatedAt                time.Time  `json:"createdAt"`
}

// ReconciliationRequestMessage is the payload of a deferred reconciliation request.
type ReconciliationRequestMessage struct {
	TrustAccountID string `json:"trustAccountId"`
	PeriodStart    string `json:"periodStart"`
	PeriodEnd      string `json:"periodEnd"`
	// BankBalance is optional; when empty the statement balance is fetched from the bank statement service.
	BankBalance *Decimal `json:"bankBalance"`
}

// ReconciliationSweepResult counts the outcome of one scheduled reconciliation sweep.
type ReconciliationSweepResult struct {
	Due        int `json:"due"`
	Completed  int `json:"completed"`
	Unbalanced int `json:"unbalanced"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}
