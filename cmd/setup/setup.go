package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/bankstatement"
	"github.com/trustbooks/go-trust-ledger/internal/common/cache"
	"github.com/trustbooks/go-trust-ledger/internal/common/dlqpublisher"
	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/publisher"
	"github.com/trustbooks/go-trust-ledger/internal/common/retry"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	cMetrics "github.com/trustbooks/go-trust-ledger/internal/common/metrics"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const workflowCachePrefix = "trust-ledger:approval-workflow:"

type Setup struct {
	Config           config.Config
	NewRelic         *newrelic.Application
	WriteDB          *sql.DB
	ReadDB           *sql.DB
	Cache            *redis.Client
	RepoCache        repositories.CacheRepository
	RepoCloudStorage repositories.CloudStorageRepository
	Service          *services.Services
	PublisherClient  *PublisherClient
	Metrics          cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(
		config.WithConfigFileName("config"),
		config.WithConfigFileSearchPaths("/config", ".", "./config"),
	)
	if err != nil {
		return
	}

	logLevel := "debug"
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}
	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = "info"
	}
	if cfg.App.LogLevel != "" {
		logLevel = cfg.App.LogLevel
	}

	logger := log.Init(cfg.App.Name,
		log.WithEnv(cfg.App.Env),
		log.WithCaller(true),
		log.AddCallerSkip(1),
		log.WithLevel(logLevel),
	)

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg, logger)

	// metrics
	mtc := cMetrics.New(nil)

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		err = fmt.Errorf("failed connect to redis: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return rdb.Close() })

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	// register redis prometheus metrics
	err = mtc.RegisterRedis(rdb, cfg.App.Name, command)
	if err != nil {
		err = fmt.Errorf("failed register redis prometheus: %w", err)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(rdb)

	cloudStorageRepo, err := repositories.NewCloudStorageRepository(&cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to cloud storage: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cloudStorageRepo.Close() })

	// events are keyed by trust account id, one account stays on one partition
	producer, err := publisher.NewKafkaSyncProducer(
		cfg.MessageBroker.KafkaConsumer.Brokers,
		publisher.WithCustomHasher(fnv.New32a),
		publisher.WithIdempotence(),
		publisher.WithClientID(cfg.App.Name+"-"+command),
		publisher.WithMetricRegistry(mtc.SaramaRegistry(cfg.App.Name+"-"+command+"-producer", time.Second)),
	)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	publisherClient := PublisherClient{
		LedgerEvents:             publisher.NewPublisher(producer, cfg.MessageBroker.KafkaConsumer.TopicLedgerEvents),
		ReconciliationRequestDLQ: dlqpublisher.New(producer, cfg.MessageBroker.KafkaConsumer.TopicReconciliationRequestDLQ, mtc),
	}

	workflowCache := cache.NewRedisClient[models.ApprovalWorkflow](rdb, workflowCachePrefix)
	bankStatementClient := bankstatement.New(cfg.BankStatement, mtc)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cloudStorageRepo,
		workflowCache,
		publisherClient.LedgerEvents,
		bankStatementClient,
		retry.NewExponentialBackOff(cfg.ExponentialBackoff),
		idgenerator.New(),
		mtc,
	)

	return &Setup{
		Config:           cfg,
		NewRelic:         newRelic,
		WriteDB:          writeDB,
		ReadDB:           readDB,
		Cache:            rdb,
		Service:          srv,
		RepoCache:        cacheRepo,
		RepoCloudStorage: cloudStorageRepo,
		PublisherClient:  &publisherClient,
		Metrics:          mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config, logger *zap.Logger) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			func(config *newrelic.Config) {
				config.Logger = nrzap.Transform(logger)
			},
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Errorf(ctx, "setupNR.NewApplication - %v", err)
			return nil
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
