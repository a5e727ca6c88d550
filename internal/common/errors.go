package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRows              = sql.ErrNoRows
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")

	ErrTrustAccountNotFound     = errors.New("trust account not found")
	ErrTrustAccountInactive     = errors.New("trust account is inactive")
	ErrClientLedgerNotFound     = errors.New("client ledger not found")
	ErrClientLedgerMismatch     = errors.New("client ledger does not belong to trust account")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidAmountPrecision   = errors.New("amount must not have more than two decimal places")
	ErrInvalidTransactionKind   = errors.New("invalid transaction kind")
	ErrInsufficientBalance      = errors.New("insufficient client ledger balance")
	ErrConcurrentModification   = errors.New("concurrent modification, retry the whole operation")
	ErrReconciliationNotFound   = errors.New("reconciliation not found")
	ErrReconciliationInProgress = errors.New("another reconciliation is already in progress for this trust account")
	ErrReconciliationClosed     = errors.New("reconciliation is not in progress")
	ErrInvalidPeriod            = errors.New("period start must not be after period end")
	ErrUnbalancedReconciliation = errors.New("reconciliation is not balanced")
	ErrLedgerCorruption         = errors.New("ledger corruption: book balance does not equal the sum of client ledgers")

	ErrApprovalWorkflowNotFound = errors.New("approval workflow not found")
	ErrInvalidApprovalLevels    = errors.New("invalid approval levels")
	ErrNoMatchingApprovalLevel  = errors.New("no approval level matches the amount")
	ErrApprovalRequestNotFound  = errors.New("approval request not found")
	ErrApprovalRequestClosed    = errors.New("approval request no longer accepts decisions")
	ErrApproverNotEligible      = errors.New("approver is not eligible for the matched level")
	ErrDuplicateDecision        = errors.New("approver already decided on this request")
	ErrInvalidDecision          = errors.New("invalid approval decision")

	ErrVendorBillNotFound  = errors.New("vendor bill not found")
	ErrPayableNotEligible  = errors.New("payable is not eligible for a check run")
	ErrAlreadyPaid         = errors.New("payable is already paid")
	ErrDuplicatePayable    = errors.New("payable listed more than once")
	ErrCheckRunNotFound    = errors.New("check run not found")
	ErrCheckSequenceAbsent = errors.New("check number sequence not initialized for trust account")

	ErrBillNotAwaitingApproval = errors.New("vendor bill is not a draft awaiting approval")
	ErrApprovalAmountMismatch  = errors.New("approval amount does not equal the balance due of the vendor bill")

	ErrInvalidFingerprint    = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
	ErrMissingIdempotencyKey = errors.New("missing idempotency key. this operation requires idempotency key")

	ErrBankStatementUnavailable = errors.New("bank statement balance unavailable")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

func (e WrapError) Unwrap() error {
	return e.Err
}
