package reconciliationrequest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/dlqpublisher"
	"github.com/trustbooks/go-trust-ledger/internal/common/kafka"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
)

var errMissingTrustAccountID = errors.New("reconciliation request has no trustAccountId")

type ReconciliationRequestHandler struct {
	kafka.BaseHandler
	ss services.SchedulerService
}

func NewReconciliationRequestHandler(clientID string, ss services.SchedulerService, consumerMetrics *metrics.ConsumerMetrics, dlq dlqpublisher.Publisher) *ReconciliationRequestHandler {
	return &ReconciliationRequestHandler{
		BaseHandler: kafka.BaseHandler{
			ClientID:        clientID,
			ConsumerMetrics: consumerMetrics,
			LogPrefix:       logMessage,
			DLQ:             dlq,
		},
		ss: ss,
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (h *ReconciliationRequestHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (h *ReconciliationRequestHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (h *ReconciliationRequestHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			correlationID := uuid.New().String()
			for _, header := range message.Headers {
				if header != nil && string(header.Key) == constants.KafkaHeaderCorrelationID && len(header.Value) > 0 {
					correlationID = string(header.Value)
				}
			}

			ctx := ctxdata.Sets(session.Context(),
				ctxdata.SetCorrelationId(correlationID),
				ctxdata.SetHost(h.ClientID),
			)

			start := time.Now()
			err := h.processMessage(ctx, message)
			h.RecordMetrics(start, message, err)

			if err != nil {
				if nackErr := h.Nack(ctx, session, message, err); nackErr != nil {
					return nackErr
				}
				continue
			}

			logField := append(h.CreateLogField(message), log.Duration("response-time", time.Since(start)))
			log.Info(ctx, logMessage, logField...)
			h.Ack(ctx, session, message)

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *ReconciliationRequestHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var payload models.ReconciliationRequestMessage
	if err := json.Unmarshal(message.Value, &payload); err != nil {
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	if payload.TrustAccountID == "" {
		return errMissingTrustAccountID
	}

	rec, err := h.ss.ReconcileAccount(ctx, payload)
	if errors.Is(err, common.ErrUnbalancedReconciliation) && rec != nil {
		// left in progress for an operator to resolve
		log.Warn(ctx, logMessage+"[UNBALANCED]",
			log.String("trustAccountId", payload.TrustAccountID),
			log.String("reconciliationId", rec.ID),
			log.String("discrepancy", rec.Discrepancy.StringFixed(models.MinorUnitPlaces)),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reconcile account %s: %w", payload.TrustAccountID, err)
	}

	log.Info(ctx, logMessage+"[COMPLETED]",
		log.String("trustAccountId", payload.TrustAccountID),
		log.String("reconciliationId", rec.ID),
	)

	return nil
}
