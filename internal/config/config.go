package config

import (
	"time"
)

type (
	Config struct {
		App                App                      `json:"app"`
		Postgres           Postgres                 `json:"postgres"`
		Redis              Redis                    `json:"redis"`
		SecretKey          string                   `json:"secret_key"`
		GcloudProjectID    string                   `json:"gcloud_project_id"`
		NewRelicLicenseKey string                   `json:"new_relic_license_key"`
		MessageBroker      MessageBroker            `json:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
		CloudStorageConfig CloudStorageConfig       `json:"cloud_storage"`
		BankStatement      HTTPConfiguration        `json:"bank_statement"`
		Ledger             LedgerConfig             `json:"ledger"`
		Scheduler          SchedulerConfig          `json:"scheduler"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"max_open_connections"`
		MaxIdleConnection int    `json:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	MessageBroker struct {
		HTTPPort      int            `json:"http_port"`
		KafkaConsumer ConsumerConfig `json:"kafka_consumer"`
	}

	ConsumerConfig struct {
		Brokers                            []string `json:"brokers"`
		ConsumerGroupReconciliationRequest string   `json:"consumer_group_reconciliation_request"`
		TopicLedgerEvents                  string   `json:"topic_ledger_events"`
		TopicReconciliationRequest         string   `json:"topic_reconciliation_request"`
		TopicReconciliationRequestDLQ      string   `json:"topic_reconciliation_request_dlq"`
		IsVerbose                          bool     `json:"is_verbose"`
		IsOldest                           bool     `json:"is_oldest"`
		Assignor                           string   `json:"assignor"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		InitialInterval   time.Duration `json:"initial_interval"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	CloudStorageConfig struct {
		BaseURL    string `json:"base_url"`
		BucketName string `json:"bucket_name"`
		// CheckRunExportPrefix is the object prefix used for exported check runs
		CheckRunExportPrefix string `json:"check_run_export_prefix"`
	}

	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url"`
		SecretKey     string        `json:"secret_key"`
		RetryCount    int           `json:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout"`
	}

	LedgerConfig struct {
		Currency string `json:"currency"`
		// FirstCheckNumber is the first number allocated for a newly created trust account
		FirstCheckNumber int64 `json:"first_check_number"`
		// WorkflowCacheTTL is how long an approval workflow definition stays in cache
		WorkflowCacheTTL time.Duration `json:"workflow_cache_ttl"`
	}

	SchedulerConfig struct {
		// ReconciliationPeriodDays is the minimum age of the last reconciliation before an account is due again
		ReconciliationPeriodDays int `json:"reconciliation_period_days"`
		Concurrency              int `json:"concurrency"`
	}
)
