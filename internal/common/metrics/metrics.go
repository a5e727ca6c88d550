package metrics

import (
	"database/sql"
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goMetrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

// Metrics owns every collector of a process: the ledger counters, outbound call latencies, and the
// pool stats of postgres, redis and sarama.
type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	SaramaRegistry(name string, flushInterval time.Duration) goMetrics.Registry
	PrometheusRegisterer() prometheus.Registerer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetPublisherPrometheus() *PublisherPrometheusMetrics
	GetLedgerPrometheus() *LedgerPrometheusMetrics
}

type metrics struct {
	reg        prometheus.Registerer
	httpClient *HTTPClientPrometheusMetrics
	publisher  *PublisherPrometheusMetrics
	ledger     *LedgerPrometheusMetrics
}

// New registers the collectors on reg; nil means the prometheus default registerer.
func New(reg prometheus.Registerer) Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &metrics{
		reg:        reg,
		httpClient: newHTTPClientPrometheusMetrics(reg),
		publisher:  newPublisherPrometheusMetrics(reg),
		ledger:     newLedgerPrometheusMetrics(reg),
	}
}

// RegisterDB exposes pool stats of the write and read pools as go_sql_* labelled db_name=<dbName>_<role>.
func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, BuildFQName(dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

// SaramaRegistry returns the registry handed to the producer config. Its meters are copied
// into prometheus every flushInterval.
func (m *metrics) SaramaRegistry(name string, flushInterval time.Duration) goMetrics.Registry {
	registry := goMetrics.NewPrefixedRegistry(FlattenName(name) + "_")
	go prometheusmetrics.NewPrometheusProvider(registry, "", "", m.reg, flushInterval).UpdatePrometheusMetrics()

	return registry
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClient
}

func (m *metrics) GetPublisherPrometheus() *PublisherPrometheusMetrics {
	return m.publisher
}

func (m *metrics) GetLedgerPrometheus() *LedgerPrometheusMetrics {
	return m.ledger
}
