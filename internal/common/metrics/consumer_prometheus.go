package metrics

import (
	"time"

	"github.com/Shopify/sarama"
	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	goMetrics "github.com/rcrowley/go-metrics"
)

const (
	ConsumerOutcomeProcessed = "processed"
	ConsumerOutcomeFailed    = "failed"
)

var consumerLatencyBuckets = []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 300}

// ConsumerMetrics belongs to one consumer group. Its go-metrics registry is handed to sarama
// and flushed into prometheus next to the handler histograms.
type ConsumerMetrics struct {
	group         string
	subsystem     string
	flushInterval time.Duration
	registerer    prometheus.Registerer
	saramaMetrics goMetrics.Registry

	lag      *prometheus.HistogramVec
	handling *prometheus.HistogramVec
	messages *prometheus.CounterVec
}

func NewConsumerMetrics(group, subsystem string, flushInterval time.Duration, reg prometheus.Registerer) *ConsumerMetrics {
	constLabels := prometheus.Labels{"consumer_group": group}

	cm := &ConsumerMetrics{
		group:         group,
		subsystem:     subsystem,
		flushInterval: flushInterval,
		registerer:    reg,
		saramaMetrics: goMetrics.NewPrefixedRegistry(FlattenName(group) + "_"),
		lag: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "kafka_consumer_lag_seconds",
			Help:        "time between a message being produced and its handler starting",
			ConstLabels: constLabels,
			Buckets:     consumerLatencyBuckets,
		}, []string{"topic"}),
		handling: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "kafka_consumer_handle_seconds",
			Help:        "time spent in the message handler",
			ConstLabels: constLabels,
			Buckets:     consumerLatencyBuckets,
		}, []string{"topic", "outcome"}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "kafka_consumer_messages_total",
			Help:        "messages handled by outcome",
			ConstLabels: constLabels,
		}, []string{"topic", "outcome"}),
	}

	reg.MustRegister(cm.lag, cm.handling, cm.messages)

	return cm
}

// Registry is the sarama metric registry of the consumer group.
func (m *ConsumerMetrics) Registry() goMetrics.Registry {
	return m.saramaMetrics
}

// Run starts flushing the sarama registry into prometheus.
func (m *ConsumerMetrics) Run() {
	provider := prometheusmetrics.NewPrometheusProvider(
		m.saramaMetrics, FlattenName(m.group), FlattenName(m.subsystem), m.registerer, m.flushInterval,
	)
	go provider.UpdatePrometheusMetrics()
}

// GenerateMetrics records one handled message; startTime is when the handler picked it up.
func (m *ConsumerMetrics) GenerateMetrics(startTime time.Time, message *sarama.ConsumerMessage, processErr error) {
	if m == nil || message == nil {
		return
	}

	outcome := ConsumerOutcomeProcessed
	if processErr != nil {
		outcome = ConsumerOutcomeFailed
	}

	if !message.Timestamp.IsZero() {
		m.lag.WithLabelValues(message.Topic).Observe(startTime.Sub(message.Timestamp).Seconds())
	}
	m.handling.WithLabelValues(message.Topic, outcome).Observe(time.Since(startTime).Seconds())
	m.messages.WithLabelValues(message.Topic, outcome).Inc()
}
