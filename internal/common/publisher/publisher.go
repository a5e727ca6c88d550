package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"

	"github.com/Shopify/sarama"
)

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewPublisher(p sarama.SyncProducer, topic string) Publisher {
	return publisher{
		producer: p,
		topic:    topic,
	}
}

func (d publisher) Publish(ctx context.Context, message any, opts ...PublishOption) error {
	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}

	msg, err := d.prepareMessage(ctx, message, options)
	if err != nil {
		log.Error(ctx, constants.LogPrefixPublisher,
			log.String("status", "failed prepare message"),
			log.Err(err))
		return err
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		log.Error(ctx, constants.LogPrefixPublisher,
			log.String("status", "failed send message"),
			log.String("topic", d.topic),
			log.Err(err))
		return err
	}

	log.Info(ctx, constants.LogPrefixPublisher,
		log.String("status", "success publish message"),
		log.Time("timestamp", common.Now()),
		log.String("topic", d.topic),
		log.String("key", options.key),
		log.Int32("partition", partition),
		log.Int64("offset", offset),
	)

	return nil
}

func (d publisher) prepareMessage(ctx context.Context, message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}

	if opts.key != "" {
		producerMsg.Key = sarama.StringEncoder(opts.key)
	}

	headers := make(map[string]string, len(opts.headers)+1)
	for k, v := range opts.headers {
		headers[k] = v
	}
	if correlationID := ctxdata.GetCorrelationId(ctx); correlationID != "" {
		if _, ok := headers[constants.KafkaHeaderCorrelationID]; !ok {
			headers[constants.KafkaHeaderCorrelationID] = correlationID
		}
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		producerMsg.Headers = append(producerMsg.Headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(headers[k]),
		})
	}

	return producerMsg, nil
}
