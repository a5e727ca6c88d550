package services

import (
	"context"
	"errors"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/publisher"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

// IsRetryable reports whether err may succeed when the whole logical operation is run again.
// Only a serialization conflict qualifies; every other kind needs corrected input.
func IsRetryable(err error) bool {
	return errors.Is(err, common.ErrConcurrentModification)
}

func validateAmount(amount models.Decimal) error {
	if !amount.IsPositive() {
		return common.ErrInvalidAmount
	}
	if !amount.HasMinorUnitPrecision() {
		return common.ErrInvalidAmountPrecision
	}
	return nil
}

func newEvent(srv *Services, eventType models.EventType, trustAccountID, entityID string, payload any) models.LedgerEvent {
	return models.LedgerEvent{
		ID:             srv.idgenerator.Generate(idgenerator.PrefixEvent),
		Type:           eventType,
		TrustAccountID: trustAccountID,
		EntityID:       entityID,
		Payload:        payload,
		OccurredAt:     common.Now(),
	}
}

// publishEvents sends events of an already committed change. A failed publish is logged only,
// the change itself stands.
func publishEvents(ctx context.Context, srv *Services, events ...models.LedgerEvent) {
	for _, ev := range events {
		err := srv.eventPub.Publish(ctx, ev,
			publisher.WithKey(ev.Key()),
			publisher.WithHeaders(map[string]string{constants.KafkaHeaderEventType: string(ev.Type)}),
		)
		if err != nil {
			log.Error(ctx, constants.LogPrefixPublisher,
				log.String("status", "failed publish ledger event"),
				log.String("eventId", ev.ID),
				log.String("eventType", string(ev.Type)),
				log.String("trustAccountId", ev.TrustAccountID),
				log.Err(err))
		}
	}
}
