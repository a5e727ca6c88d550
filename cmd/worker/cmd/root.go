package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/trustbooks/go-trust-ledger/cmd/setup"
	"github.com/trustbooks/go-trust-ledger/internal/common/graceful"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/deliveries/job"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	helperFlag "github.com/trustbooks/go-trust-ledger/internal/common/flag"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	_ = runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	_ = runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date, YYYY-MM-DD")
	runJobCmd.Flags().StringP(runJobCmdID, "i", "", "resource id, e.g. the check run to export")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	// routes only need the names, no service is wired
	j := job.New(config.Config{}, &services.Services{})

	var lines []string
	for version, l := range j.Routes {
		for name := range l {
			lines = append(lines, fmt.Sprintf("version=%s, name=%s", version, name))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		fmt.Println(line)
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -d={job-date} -i={resource-id}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDate    = "date"
	runJobCmdID      = "id"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)
	id, _ := ccmd.Flags().GetString(runJobCmdID)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer func() {
		if err := graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...); err != nil {
			log.Errorf(ctx, "failed to release job resources: %v", err)
		}
	}()

	j := job.New(s.Config, s.Service)
	err = j.Start(ctx, helperFlag.Job{
		JobName: name,
		Version: version,
		Date:    date,
		ID:      id,
	})
	if err != nil {
		log.Errorf(ctx, "job %s finished with error: %v", name, err)
		return
	}

	log.Info(ctx, "job server stopped!")
}
