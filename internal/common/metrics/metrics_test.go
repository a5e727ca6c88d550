package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Shopify/sarama"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	ledger := m.GetLedgerPrometheus()
	ledger.RecordPosting("deposit", decimal.RequireFromString("100.50"))
	ledger.RecordPosting("deposit", decimal.RequireFromString("10"))
	ledger.RecordReconciliation("completed")
	ledger.RecordApprovalDecision("approve", "approved")
	ledger.RecordCheckInstrument(decimal.RequireFromString("25"))

	assert.Equal(t, float64(2), value(t, ledger.postings.WithLabelValues("deposit")))
	assert.Equal(t, 110.5, value(t, ledger.postedAmount.WithLabelValues("deposit")))
	assert.Equal(t, float64(1), value(t, ledger.reconciliationResults.WithLabelValues("completed")))
	assert.Equal(t, float64(1), value(t, ledger.checkInstruments))
	assert.Equal(t, float64(25), value(t, ledger.checkAmount))

	m.GetPublisherPrometheus().GenerateMetrics(time.Now(), "transaction.posted", errors.New("x"))
	m.GetHTTPClientPrometheus().Record(time.Second, "bank-statement", "GET", "/balances", 200)
	pm := collectOne(t, m.GetPublisherPrometheus().kafkaPublishDurationHist.WithLabelValues("transaction.posted", "false").(prometheus.Histogram))
	assert.Equal(t, uint64(1), pm.GetHistogram().GetSampleCount())
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var ledger *LedgerPrometheusMetrics
	assert.NotPanics(t, func() {
		ledger.RecordPosting("deposit", decimal.NewFromInt(1))
		ledger.RecordReconciliation("failed")
		ledger.RecordApprovalDecision("reject", "rejected")
		ledger.RecordCheckInstrument(decimal.NewFromInt(1))
	})
}

func TestRegisterDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := New(prometheus.NewRegistry())
	assert.NoError(t, m.RegisterDB(db, "write", "trust-ledger"))
}

func TestBuildFQName(t *testing.T) {
	assert.Equal(t, "go_trust_ledger_api", BuildFQName("go-trust-ledger", "api"))
	assert.Equal(t, "trust_ledger_consumer_reconciliation_request", BuildFQName("trust-ledger", "", "consumer.reconciliation/request"))
	assert.Equal(t, "db_write", FlattenName(" db:write "))
}

func collectOne(t *testing.T, c prometheus.Collector) *dto.Metric {
	t.Helper()
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	close(ch)

	metric, ok := <-ch
	require.True(t, ok)

	var pb dto.Metric
	require.NoError(t, metric.Write(&pb))
	return &pb
}

func value(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	return collectOne(t, c).GetCounter().GetValue()
}

func TestConsumerMetrics_GenerateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cm := NewConsumerMetrics("trust-ledger-reconciliation", "trust-ledger", time.Second, reg)

	msg := &sarama.ConsumerMessage{Topic: "reconciliation.request", Timestamp: time.Now().Add(-time.Second)}
	cm.GenerateMetrics(time.Now(), msg, nil)
	cm.GenerateMetrics(time.Now(), msg, errors.New("bank feed down"))
	cm.GenerateMetrics(time.Now(), &sarama.ConsumerMessage{Topic: "reconciliation.request"}, nil)

	assert.Equal(t, float64(2), value(t, cm.messages.WithLabelValues("reconciliation.request", ConsumerOutcomeProcessed)))
	assert.Equal(t, float64(1), value(t, cm.messages.WithLabelValues("reconciliation.request", ConsumerOutcomeFailed)))

	lag := collectOne(t, cm.lag.WithLabelValues("reconciliation.request").(prometheus.Histogram))
	assert.Equal(t, uint64(2), lag.GetHistogram().GetSampleCount())

	assert.NotPanics(t, func() {
		var nilMetrics *ConsumerMetrics
		nilMetrics.GenerateMetrics(time.Now(), msg, nil)
	})
}
