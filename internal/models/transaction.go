package models

import (
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/pagination"
)

const kindTransaction = "transaction"

// Transaction is immutable once posted, except for the one-way pending to cleared transition.
type Transaction struct {
	ID             string
	Sequence       int64
	TrustAccountID string
	ClientLedgerID string
	Kind           TransactionKind
	Amount         Decimal
	SignedAmount   Decimal
	Description    string
	Reference      string
	Metadata       map[string]string
	IsCleared      bool
	ClearedDate    *time.Time
	CreatedAt      time.Time
}

// GetCursor implements PaginateableContent interface
func (t Transaction) GetCursor() string {
	return pagination.EncodeSequence(t.Sequence)
}

// ToModelResponse implements PaginateableContent interface
func (t Transaction) ToModelResponse() TransactionOut {
	return TransactionOut{
		Kind:            kindTransaction,
		ID:              t.ID,
		TrustAccountID:  t.TrustAccountID,
		ClientLedgerID:  t.ClientLedgerID,
		TransactionKind: string(t.Kind),
		Amount:          t.Amount.StringFixed(MinorUnitPlaces),
		SignedAmount:    t.SignedAmount.StringFixed(MinorUnitPlaces),
		Description:     t.Description,
		Reference:       t.Reference,
		Metadata:        t.Metadata,
		IsCleared:       t.IsCleared,
		ClearedDate:     formatNullableDate(t.ClearedDate),
		CreatedAt:       t.CreatedAt,
	}
}

type PostTransactionIn struct {
	TrustAccountID string
	ClientLedgerID string
	Kind           TransactionKind
	Amount         Decimal
	Description    string
	Reference      string
	Metadata       map[string]string
}

type PostTransactionRequest struct {
	TrustAccountID string            `json:"trustAccountId" validate:"required"`
	ClientLedgerID string            `json:"clientLedgerId"`
	Kind           string            `json:"kind" validate:"required,oneof=deposit disbursement transfer_to_operating refund interest"`
	Amount         Decimal           `json:"amount" validate:"decimalGreaterThan=0,moneyPrecision"`
	Description    string            `json:"description" validate:"max=255"`
	Reference      string            `json:"reference" validate:"max=100"`
	Metadata       map[string]string `json:"metadata"`
}

func (r PostTransactionRequest) ToPostTransactionIn() (PostTransactionIn, error) {
	kind, err := ParseTransactionKind(r.Kind)
	if err != nil {
		return PostTransactionIn{}, err
	}

	return PostTransactionIn{
		TrustAccountID: r.TrustAccountID,
		ClientLedgerID: r.ClientLedgerID,
		Kind:           kind,
		Amount:         r.Amount,
		Description:    r.Description,
		Reference:      r.Reference,
		Metadata:       r.Metadata,
	}, nil
}

type MarkClearedRequest struct {
	ClearedDate string `json:"clearedDate" validate:"omitempty,date"`
}

type TransactionOut struct {
	Kind            string            `json:"kind"`
	ID              string            `json:"id"`
	TrustAccountID  string            `json:"trustAccountId"`
	ClientLedgerID  string            `json:"clientLedgerId"`
	TransactionKind string            `json:"transactionKind"`
	Amount          string            `json:"amount"`
	SignedAmount    string            `json:"signedAmount"`
	Description     string            `json:"description"`
	Reference       string            `json:"reference"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	IsCleared       bool              `json:"isCleared"`
	ClearedDate     *string           `json:"clearedDate"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ListTransactionsFilter is the service input for listTransactions.
type ListTransactionsFilter struct {
	TrustAccountID string
	ClientLedgerID string
	Kind           TransactionKind
	IsCleared      *bool
	CreatedFrom    *time.Time
	CreatedTo      *time.Time

	pagination.Options
}

type ListTransactionsRequest struct {
	ClientLedgerID string `query:"clientLedgerId" json:"clientLedgerId"`
	Kind           string `query:"kind" json:"kind" validate:"omitempty,oneof=deposit disbursement transfer_to_operating refund interest"`
	IsCleared      string `query:"isCleared" json:"isCleared" validate:"omitempty,oneof=true false"`
	CreatedFrom    string `query:"createdFrom" json:"createdFrom" validate:"omitempty,date"`
	CreatedTo      string `query:"createdTo" json:"createdTo" validate:"omitempty,date"`
	Limit          int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=500"`
	NextCursor     string `query:"nextCursor" json:"nextCursor"`
	PrevCursor     string `query:"prevCursor" json:"prevCursor"`
}

func (r ListTransactionsRequest) ToFilter(trustAccountID string) (ListTransactionsFilter, error) {
	filter := ListTransactionsFilter{
		TrustAccountID: trustAccountID,
		ClientLedgerID: r.ClientLedgerID,
		Kind:           TransactionKind(r.Kind),
		Options: pagination.Options{
			Limit:      r.Limit,
			NextCursor: r.NextCursor,
			PrevCursor: r.PrevCursor,
		},
	}

	if r.IsCleared != "" {
		cleared := r.IsCleared == "true"
		filter.IsCleared = &cleared
	}

	if r.CreatedFrom != "" {
		from, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.CreatedFrom)
		if err != nil {
			return filter, err
		}
		filter.CreatedFrom = &from
	}

	if r.CreatedTo != "" {
		to, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.CreatedTo)
		if err != nil {
			return filter, err
		}
		// inclusive of the whole day
		to = to.AddDate(0, 0, 1)
		filter.CreatedTo = &to
	}

	return filter, nil
}
