package messaging

import (
	"context"
	"errors"
	"os"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/config"

	"github.com/Shopify/sarama"
	gometrics "github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
)

var ErrNoBrokers = errors.New("no kafka bootstrap brokers defined, please set the brokers")

// CreateSaramaConsumerConfig builds the consumer group config shared by every consumer.
// registry may be nil.
func CreateSaramaConsumerConfig(cfg config.ConsumerConfig, logPrefix string, registry gometrics.Registry) (*sarama.Config, error) {
	if len(cfg.Brokers) == 0 {
		log.Error(context.Background(), logPrefix, log.Err(ErrNoBrokers))
		return nil, ErrNoBrokers
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Version = sarama.V3_0_0_0
	saramaCfg.ClientID, _ = os.Hostname()
	saramaCfg.Consumer.Return.Errors = true
	// offsets are committed by the handler once a message has been fully handled
	saramaCfg.Consumer.Offsets.AutoCommit.Enable = true

	if registry != nil {
		saramaCfg.MetricRegistry = registry
	}

	if cfg.IsVerbose {
		stdLog, err := zap.NewStdLogAt(log.Logger().Named(logPrefix), zap.DebugLevel)
		if err == nil {
			sarama.Logger = stdLog
		}
	}

	if cfg.IsOldest {
		saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	switch cfg.Assignor {
	case "sticky":
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategySticky}
	case "roundrobin":
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRoundRobin}
	default:
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRange}
	}

	return saramaCfg, nil
}
