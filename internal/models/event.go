package models

import (
	"time"
)

type EventType string

const (
	EventTransactionPosted       EventType = "transaction.posted"
	EventTransactionCleared      EventType = "transaction.cleared"
	EventReconciliationStarted   EventType = "reconciliation.started"
	EventReconciliationCompleted EventType = "reconciliation.completed"
	EventReconciliationFailed    EventType = "reconciliation.failed"
	EventLedgerCorruption        EventType = "ledger.corruption"
	EventApprovalSubmitted       EventType = "approval.submitted"
	EventApprovalDecided         EventType = "approval.decided"
	EventCheckRunCreated         EventType = "check_run.created"
)

// LedgerEvent is published after a change has been committed. Key is the trust account id so
// every event of one account lands on the same partition.
type LedgerEvent struct {
	ID             string            `json:"id"`
	Type           EventType         `json:"type"`
	TrustAccountID string            `json:"trustAccountId"`
	EntityID       string            `json:"entityId"`
	Payload        any               `json:"payload"`
	Headers        map[string]string `json:"-"`
	OccurredAt     time.Time         `json:"occurredAt"`
}

func (e LedgerEvent) Key() string {
	if e.TrustAccountID != "" {
		return e.TrustAccountID
	}
	return e.EntityID
}
