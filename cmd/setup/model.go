package setup

import (
	"github.com/trustbooks/go-trust-ledger/internal/common/dlqpublisher"
	"github.com/trustbooks/go-trust-ledger/internal/common/publisher"
)

type PublisherClient struct {
	LedgerEvents             publisher.Publisher
	ReconciliationRequestDLQ dlqpublisher.Publisher
}
