package models

import (
	"github.com/trustbooks/go-trust-ledger/internal/common"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindDeposit             TransactionKind = "deposit"
	TransactionKindDisbursement        TransactionKind = "disbursement"
	TransactionKindTransferToOperating TransactionKind = "transfer_to_operating"
	TransactionKindRefund              TransactionKind = "refund"
	TransactionKindInterest            TransactionKind = "interest"
)

// transactionSigns is the only place a kind is turned into a direction.
var transactionSigns = map[TransactionKind]int64{
	TransactionKindDeposit:             1,
	TransactionKindInterest:            1,
	TransactionKindDisbursement:        -1,
	TransactionKindTransferToOperating: -1,
	TransactionKindRefund:              -1,
}

func ParseTransactionKind(s string) (TransactionKind, error) {
	k := TransactionKind(s)
	if _, ok := transactionSigns[k]; !ok {
		return "", common.ErrInvalidTransactionKind
	}
	return k, nil
}

func (k TransactionKind) IsValid() bool {
	_, ok := transactionSigns[k]
	return ok
}

func (k TransactionKind) IsCredit() bool {
	return transactionSigns[k] > 0
}

// SignedAmount applies the kind's sign to a positive magnitude.
func (k TransactionKind) SignedAmount(amount Decimal) (Decimal, error) {
	sign, ok := transactionSigns[k]
	if !ok {
		return Decimal{}, common.ErrInvalidTransactionKind
	}
	return Decimal{amount.Decimal.Mul(decimal.NewFromInt(sign))}, nil
}

func (k TransactionKind) String() string {
	return string(k)
}
