package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
app:
  name: trust-ledger-test
  env: dev
  http_port: 9000
  graceful_timeout: 5s
postgres:
  write:
    db_host: localhost
    db_name: ledger
ledger:
  first_check_number: 5000
message_broker:
  kafka_consumer:
    brokers:
      - localhost:9092
    topic_ledger_events: ledger-events
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	t.Run("reads file and applies defaults", func(t *testing.T) {
		cfg, err := Load(WithConfigFileSearchPaths(dir))
		require.NoError(t, err)

		assert.Equal(t, "trust-ledger-test", cfg.App.Name)
		assert.Equal(t, 9000, cfg.App.HTTPPort)
		assert.Equal(t, 5*time.Second, cfg.App.GracefulTimeout)
		assert.Equal(t, "localhost", cfg.Postgres.Write.DbHost)
		assert.Equal(t, int64(5000), cfg.Ledger.FirstCheckNumber)
		assert.Equal(t, "USD", cfg.Ledger.Currency)
		assert.Equal(t, 30, cfg.Scheduler.ReconciliationPeriodDays)
		assert.Equal(t, []string{"localhost:9092"}, cfg.MessageBroker.KafkaConsumer.Brokers)
		assert.Equal(t, "ledger-events", cfg.MessageBroker.KafkaConsumer.TopicLedgerEvents)
		assert.Equal(t, "trust-ledger.reconciliation-request.dlq", cfg.MessageBroker.KafkaConsumer.TopicReconciliationRequestDLQ)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("TRUST_LEDGER_APP_NAME", "from-env")

		cfg, err := Load(WithConfigFileSearchPaths(dir))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.App.Name)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(WithConfigFileSearchPaths(t.TempDir()))
		require.NoError(t, err)
		assert.Equal(t, "go-trust-ledger", cfg.App.Name)
		assert.Equal(t, 8080, cfg.App.HTTPPort)
	})
}

func TestStringToEnvironment(t *testing.T) {
	assert.Equal(t, PROD_ENV, StringToEnvironment("PROD"))
	assert.Equal(t, LOCAL_ENV, StringToEnvironment("local"))
	assert.Equal(t, UNDEFINED_ENV, StringToEnvironment("staging"))
	assert.Equal(t, "uat", EnvironmentToString(UAT_ENV))
}
