package dlqpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/models"

	"github.com/Shopify/sarama"
)

const eventTypeFailedMessage = "dlq.failed_message"

type Publisher interface {
	Publish(ctx context.Context, message models.FailedMessage) error
}

type kafkaDlq struct {
	producer sarama.SyncProducer
	topic    string
	metrics  metrics.Metrics
}

func New(p sarama.SyncProducer, topic string, m metrics.Metrics) Publisher {
	return &kafkaDlq{
		producer: p,
		topic:    topic,
		metrics:  m,
	}
}

func (k *kafkaDlq) Publish(ctx context.Context, message models.FailedMessage) (err error) {
	startTime := time.Now()
	defer func() {
		if k.metrics != nil {
			k.metrics.GetPublisherPrometheus().GenerateMetrics(startTime, eventTypeFailedMessage, err)
		}
	}()

	if message.CauseError != nil && message.Error == "" {
		message.Error = message.CauseError.Error()
	}

	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal failed message: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Value: sarama.ByteEncoder(value),
	}
	if message.Key != "" {
		msg.Key = sarama.StringEncoder(message.Key)
	}
	if correlationID := ctxdata.GetCorrelationId(ctx); correlationID != "" {
		msg.Headers = []sarama.RecordHeader{{
			Key:   []byte(constants.KafkaHeaderCorrelationID),
			Value: []byte(correlationID),
		}}
	}

	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", k.topic, err)
	}

	log.Info(ctx, constants.LogPrefixPublisher+"[DLQ]",
		log.String("topic", k.topic),
		log.String("source-topic", message.Topic),
		log.Int64("source-offset", message.Offset),
		log.Int32("partition", partition),
		log.Int64("offset", offset),
	)

	return nil
}
