package reconciliationrequest

import (
	"context"

	"github.com/trustbooks/go-trust-ledger/internal/common/dlqpublisher"
	"github.com/trustbooks/go-trust-ledger/internal/common/kafka"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/Shopify/sarama"
)

const logMessage = "[KAFKA-CONSUMER] [RECONCILIATION-REQUEST] "

// New consumes deferred reconciliation requests published by other collaborators.
// Requests that fail are dead-lettered through dlq.
func New(ctx context.Context, cfg config.Config, ss services.SchedulerService, m metrics.Metrics, dlq dlqpublisher.Publisher) (*kafka.BaseConsumer, error) {
	consumerCfg := cfg.MessageBroker.KafkaConsumer

	return kafka.NewBaseConsumer(kafka.BaseConsumerConfig{
		Ctx:     ctx,
		Config:  cfg,
		Metrics: m,
		NewHandler: func(clientID string, consumerMetrics *metrics.ConsumerMetrics) sarama.ConsumerGroupHandler {
			return NewReconciliationRequestHandler(clientID, ss, consumerMetrics, dlq)
		},
		LogPrefix:     logMessage,
		Topic:         consumerCfg.TopicReconciliationRequest,
		ConsumerGroup: consumerCfg.ConsumerGroupReconciliationRequest,
	})
}
