package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/messaging"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/config"

	"github.com/Shopify/sarama"
	gometrics "github.com/rcrowley/go-metrics"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoTopic         = errors.New("no topics given to be consumed, please set the topic")
	ErrNoConsumerGroup = errors.New("no kafka consumer group defined, please set the group")
)

// HandlerFactory builds the group handler once the sarama client id and consumer metrics are known.
type HandlerFactory func(clientID string, consumerMetrics *metrics.ConsumerMetrics) sarama.ConsumerGroupHandler

type BaseConsumer struct {
	ctx             context.Context
	clientID        string
	cfg             config.Config
	consumerCfg     config.ConsumerConfig
	cg              sarama.ConsumerGroup
	newHandler      HandlerFactory
	handler         sarama.ConsumerGroupHandler
	metrics         metrics.Metrics
	consumerMetrics *metrics.ConsumerMetrics
	logPrefix       string
	topic           string
	consumerGroup   string
}

type BaseConsumerConfig struct {
	Ctx           context.Context
	Config        config.Config
	Metrics       metrics.Metrics
	NewHandler    HandlerFactory
	LogPrefix     string
	Topic         string
	ConsumerGroup string
}

func NewBaseConsumer(cfg BaseConsumerConfig) (*BaseConsumer, error) {
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	if cfg.ConsumerGroup == "" {
		return nil, ErrNoConsumerGroup
	}

	c := &BaseConsumer{
		ctx:           cfg.Ctx,
		cfg:           cfg.Config,
		consumerCfg:   cfg.Config.MessageBroker.KafkaConsumer,
		newHandler:    cfg.NewHandler,
		metrics:       cfg.Metrics,
		logPrefix:     cfg.LogPrefix,
		topic:         cfg.Topic,
		consumerGroup: cfg.ConsumerGroup,
	}

	log.Info(c.ctx, c.logPrefix, log.String("status", "success init kafka consumer"))

	return c, nil
}

func (c *BaseConsumer) PreStart() error {
	var registry gometrics.Registry
	if c.metrics != nil {
		c.consumerMetrics = metrics.NewConsumerMetrics(c.consumerGroup, c.cfg.App.Name, 1*time.Second, c.metrics.PrometheusRegisterer())
		registry = c.consumerMetrics.Registry()
	}

	saramaCfg, err := messaging.CreateSaramaConsumerConfig(c.consumerCfg, c.logPrefix, registry)
	if err != nil {
		return fmt.Errorf("failed to create consumer config: %w", err)
	}

	if c.consumerMetrics != nil {
		c.consumerMetrics.Run()
	}

	c.clientID = saramaCfg.ClientID
	c.handler = c.newHandler(c.clientID, c.consumerMetrics)

	client, err := sarama.NewConsumerGroup(c.consumerCfg.Brokers, c.consumerGroup, saramaCfg)
	if err != nil {
		return err
	}
	c.cg = client

	return nil
}

func (c *BaseConsumer) Start() graceful.ProcessStarter {
	return func() error {
		err := c.PreStart()
		if err != nil {
			return err
		}

		// track errors
		go func() {
			for errCg := range c.cg.Errors() {
				log.Error(c.ctx, c.logPrefix, log.Err(fmt.Errorf("client error: %w", errCg)))
			}
		}()

		eg, ctx := errgroup.WithContext(c.ctx)

		eg.Go(func() error {
			for {
				if err := c.cg.Consume(ctx, []string{c.topic}, c.handler); err != nil {
					log.Warn(c.ctx, c.logPrefix, log.Err(fmt.Errorf("error start consumer: %w", err)))
				}
				if err := c.ctx.Err(); err != nil {
					return fmt.Errorf("context was canceled: %w", err)
				}
			}
		})

		return eg.Wait()
	}
}

func (c *BaseConsumer) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		if c.cg == nil {
			return nil
		}
		return c.cg.Close()
	}
}
