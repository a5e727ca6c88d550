package consumer

import (
	"context"
	"fmt"

	"github.com/trustbooks/go-trust-ledger/cmd/setup"
	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	reconciliationrequest "github.com/trustbooks/go-trust-ledger/internal/deliveries/consumer/reconciliation_request"
)

func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	conf config.Config,
	svc *services.Services,
	contract *setup.Setup,
) (consumerProcess graceful.ProcessStartStopper, stoppers []graceful.ProcessStopper, err error) {
	switch consumerName {
	case "reconciliation_request":
		consumerProcess, err = reconciliationrequest.New(ctx, conf, svc.Scheduler, contract.Metrics, contract.PublisherClient.ReconciliationRequestDLQ)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}
