package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/dlqpublisher"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/models"

	"github.com/Shopify/sarama"
)

type BaseHandler struct {
	ClientID        string
	ConsumerMetrics *metrics.ConsumerMetrics
	LogPrefix       string
	DLQ             dlqpublisher.Publisher
}

func (b *BaseHandler) CreateLogField(msg *sarama.ConsumerMessage) []log.Field {
	return []log.Field{
		log.Time("timestamp", msg.Timestamp),
		log.String("topic", msg.Topic),
		log.String("key", string(msg.Key)),
		log.Int32("partition", msg.Partition),
		log.Int64("offset", msg.Offset),
		log.String("message-claimed", string(msg.Value)),
	}
}

func (b *BaseHandler) Ack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
	log.Debug(
		ctx,
		b.LogPrefix+"[ACK]",
		log.String("topic", message.Topic),
		log.Int32("partition", message.Partition),
		log.Int64("offset", message.Offset),
	)
}

// Nack dead-letters a failed message and commits it so it does not block the partition.
// It returns an error, leaving the offset unmarked, when the dead letter cannot be written;
// the caller ends the claim so the group redelivers from the last commit.
func (b *BaseHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) error {
	logField := append(b.CreateLogField(message), log.Err(causeErr))

	if b.DLQ != nil {
		err := b.DLQ.Publish(ctx, models.FailedMessage{
			Topic:      message.Topic,
			Key:        string(message.Key),
			Partition:  message.Partition,
			Offset:     message.Offset,
			Payload:    message.Value,
			Timestamp:  message.Timestamp,
			CauseError: causeErr,
			Error:      causeErr.Error(),
		})
		if err != nil {
			log.Error(ctx, b.LogPrefix+"[NACK-DLQ-FAILED]", append(logField, log.String("dlq-error", err.Error()))...)
			return fmt.Errorf("dead-letter offset %d of %s: %w", message.Offset, message.Topic, err)
		}
		log.Info(ctx, b.LogPrefix+"[NACK-DLQ-SUCCESS]", logField...)
	}

	session.MarkMessage(message, "")
	log.Warn(ctx, b.LogPrefix+"[NACK]", logField...)
	return nil
}

func (b *BaseHandler) RecordMetrics(startTime time.Time, message *sarama.ConsumerMessage, err error) {
	if b.ConsumerMetrics != nil {
		b.ConsumerMetrics.GenerateMetrics(startTime, message, err)
	}
}
