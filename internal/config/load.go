package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "TRUST_LEDGER"

type loadOptions struct {
	fileName    string
	searchPaths []string
}

type LoadOption func(*loadOptions)

func WithConfigFileName(name string) LoadOption {
	return func(o *loadOptions) {
		o.fileName = name
	}
}

func WithConfigFileSearchPaths(paths ...string) LoadOption {
	return func(o *loadOptions) {
		o.searchPaths = append(o.searchPaths, paths...)
	}
}

// Load reads the yaml config file found in the search paths and lets TRUST_LEDGER_* env vars override it.
// Nested keys map to env vars by replacing dots with underscores, e.g. TRUST_LEDGER_POSTGRES_WRITE_DB_HOST.
func Load(opts ...LoadOption) (Config, error) {
	o := &loadOptions{fileName: "config"}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.searchPaths) == 0 {
		o.searchPaths = []string{"/config", ".", "./config"}
	}

	v := viper.New()
	v.SetConfigName(o.fileName)
	v.SetConfigType("yaml")
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-trust-ledger")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.graceful_timeout", "10s")
	v.SetDefault("app.http_timeout", "30s")
	v.SetDefault("ledger.currency", "USD")
	v.SetDefault("ledger.first_check_number", 1001)
	v.SetDefault("ledger.workflow_cache_ttl", "10m")
	v.SetDefault("scheduler.reconciliation_period_days", 30)
	v.SetDefault("scheduler.concurrency", 4)
	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("cloud_storage.check_run_export_prefix", "check-runs")
	v.SetDefault("message_broker.kafka_consumer.topic_reconciliation_request_dlq", "trust-ledger.reconciliation-request.dlq")
}
