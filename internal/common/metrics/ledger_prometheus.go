package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// LedgerPrometheusMetrics counts committed ledger activity. A nil receiver records nothing.
type LedgerPrometheusMetrics struct {
	postings              *prometheus.CounterVec
	postedAmount          *prometheus.CounterVec
	reconciliationResults *prometheus.CounterVec
	approvalDecisions     *prometheus.CounterVec
	checkInstruments      prometheus.Counter
	checkAmount           prometheus.Counter
}

func newLedgerPrometheusMetrics(reg prometheus.Registerer) *LedgerPrometheusMetrics {
	m := &LedgerPrometheusMetrics{
		postings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_ledger_postings_total",
			Help: "Number of committed ledger postings by kind",
		}, []string{"kind"}),
		postedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_ledger_posted_amount_total",
			Help: "Sum of committed posting amounts by kind",
		}, []string{"kind"}),
		reconciliationResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_ledger_reconciliation_results_total",
			Help: "Reconciliation completion attempts by result",
		}, []string{"result"}),
		approvalDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_ledger_approval_decisions_total",
			Help: "Approval decisions by decision and resulting status",
		}, []string{"decision", "status"}),
		checkInstruments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trust_ledger_check_instruments_total",
			Help: "Number of check instruments issued",
		}),
		checkAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trust_ledger_check_amount_total",
			Help: "Sum of issued check amounts",
		}),
	}

	reg.MustRegister(m.postings, m.postedAmount, m.reconciliationResults, m.approvalDecisions, m.checkInstruments, m.checkAmount)

	return m
}

func (m *LedgerPrometheusMetrics) RecordPosting(kind string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	value, _ := amount.Float64()
	m.postings.WithLabelValues(kind).Inc()
	m.postedAmount.WithLabelValues(kind).Add(value)
}

func (m *LedgerPrometheusMetrics) RecordReconciliation(result string) {
	if m == nil {
		return
	}
	m.reconciliationResults.WithLabelValues(result).Inc()
}

func (m *LedgerPrometheusMetrics) RecordApprovalDecision(decision, status string) {
	if m == nil {
		return
	}
	m.approvalDecisions.WithLabelValues(decision, status).Inc()
}

func (m *LedgerPrometheusMetrics) RecordCheckInstrument(amount decimal.Decimal) {
	if m == nil {
		return
	}
	value, _ := amount.Float64()
	m.checkInstruments.Inc()
	m.checkAmount.Add(value)
}
