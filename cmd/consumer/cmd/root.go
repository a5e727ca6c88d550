package cmd

import (
	"context"
	"os"

	"github.com/trustbooks/go-trust-ledger/cmd/setup"
	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/deliveries/consumer"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling trust ledger messages",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runConsumerCmd)

	runConsumerCmd.Flags().StringP(runConsumerCmdName, "n", "", "consumer name")
	_ = runConsumerCmd.MarkFlagRequired(runConsumerCmdName)
}

var (
	runConsumerCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    `Run consumer for handling trust ledger messages, available consumer type: reconciliation_request`,
		Example: "consumer run -n={consumer-type-name}",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)

	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	log.Infof(ctx, "initializing consumer: %s", consumerName)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	consumerProcess, consumerStopper, err := consumer.NewKafkaConsumer(ctx, consumerName, s.Config, s.Service, s)
	if err != nil {
		_ = graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
		log.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	healthCheckProcess := consumer.NewHTTPServer(s.Config)

	starters = append(starters, consumerProcess.Start(), healthCheckProcess.Start())
	// stoppers run last registered first
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, consumerStopper...)
	stoppers = append(stoppers, consumerProcess.Stop())
	stoppers = append(stoppers, func(context.Context) error {
		cancel()
		return nil
	})
	stoppers = append(stoppers, healthCheckProcess.Stop())

	graceful.StartProcessAtBackground(starters...)
	log.Infof(ctx, "consumer %s started, waiting for shutdown signal...", consumerName)

	if err := graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...); err != nil {
		log.Errorf(ctx, "failed to stop gracefully: %v", err)
	}

	log.Infof(ctx, "consumer %s stopped successfully!", consumerName)
}
