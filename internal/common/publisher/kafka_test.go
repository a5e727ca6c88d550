package publisher

import (
	"hash/fnv"
	"testing"

	"github.com/Shopify/sarama"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestProducerOptions(t *testing.T) {
	registry := gometrics.NewRegistry()

	cfg := defaultProducerConfig()
	for _, opt := range []ProducerOption{
		WithCustomHasher(fnv.New32a),
		WithIdempotence(),
		WithClientID("trust-ledger-api"),
		WithMetricRegistry(registry),
	} {
		opt(cfg)
	}

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	assert.True(t, cfg.Producer.Idempotent)
	assert.Equal(t, 1, cfg.Net.MaxOpenRequests)
	assert.Equal(t, "trust-ledger-api", cfg.ClientID)
	assert.Equal(t, registry, cfg.MetricRegistry)
	assert.NotNil(t, cfg.Producer.Partitioner)
}

func TestProducerOptions_EmptyValuesKeepDefaults(t *testing.T) {
	cfg := defaultProducerConfig()
	defaultRegistry := cfg.MetricRegistry

	WithClientID("")(cfg)
	WithMetricRegistry(nil)(cfg)

	assert.Equal(t, "sarama", cfg.ClientID)
	assert.Equal(t, defaultRegistry, cfg.MetricRegistry)
}
