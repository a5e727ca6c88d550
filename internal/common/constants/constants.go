package constants

// Pagination
const (
	DefaultLimit = 20
	MaxLimit     = 500
	// OverFetchOffset is fetched on top of the limit to learn whether another page exists.
	OverFetchOffset = 1
)

// Log Prefixes
const (
	LogPrefixTransaction           = "[TRANSACTION]"
	LogPrefixReconciliation        = "[RECONCILIATION]"
	LogPrefixApproval              = "[APPROVAL]"
	LogPrefixCheckRun              = "[CHECK-RUN]"
	LogPrefixPublisher             = "[PUBLISHER]"
	LogPrefixJob                   = "[JOB]"
	LogPrefixKafkaConsumer         = "[KAFKA-CONSUMER]"
	LogPrefixReconciliationRequest = "[RECONCILIATION-REQUEST]"
)

// HTTP headers
const (
	HeaderSecretKey      = "X-Secret-Key"
	HeaderIdempotencyKey = "X-Idempotency-Key"
	HeaderCorrelationID  = "X-Correlation-Id"
	HeaderActor          = "X-Actor-Id"
)

// Kafka headers
const (
	KafkaHeaderEventType     = "event_type"
	KafkaHeaderCorrelationID = "correlation_id"
)

// Export
const (
	CheckRunExportContentType = "text/csv"
)
