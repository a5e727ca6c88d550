package publisher

import (
	"hash"
	"time"

	"github.com/Shopify/sarama"
	gometrics "github.com/rcrowley/go-metrics"
)

// ProducerOption tunes the sarama config before the producer is built.
type ProducerOption func(*sarama.Config)

// NewKafkaSyncProducer builds the producer for ledger events. It waits for every in-sync
// replica, so a nil error from SendMessage means the event survives a broker loss.
func NewKafkaSyncProducer(brokers []string, opts ...ProducerOption) (sarama.SyncProducer, error) {
	cfg := defaultProducerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return sarama.NewSyncProducer(brokers, cfg)
}

func defaultProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Timeout = 2 * time.Second

	cfg.Net.DialTimeout = 2 * time.Second
	cfg.Net.ReadTimeout = 2 * time.Second
	cfg.Net.WriteTimeout = 2 * time.Second

	return cfg
}

// WithCustomHasher partitions on the message key. Events are keyed by trust account, so one
// account's postings and reconciliations keep their order.
func WithCustomHasher(hasher func() hash.Hash32) ProducerOption {
	return func(cfg *sarama.Config) {
		cfg.Producer.Partitioner = sarama.NewCustomHashPartitioner(hasher)
	}
}

// WithIdempotence turns on the idempotent producer so a retried send is not written twice.
func WithIdempotence() ProducerOption {
	return func(cfg *sarama.Config) {
		cfg.Version = sarama.V2_1_0_0
		cfg.Producer.Idempotent = true
		cfg.Net.MaxOpenRequests = 1
	}
}

func WithClientID(clientID string) ProducerOption {
	return func(cfg *sarama.Config) {
		if clientID != "" {
			cfg.ClientID = clientID
		}
	}
}

func WithMetricRegistry(registry gometrics.Registry) ProducerOption {
	return func(cfg *sarama.Config) {
		if registry != nil {
			cfg.MetricRegistry = registry
		}
	}
}
