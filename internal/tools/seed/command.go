package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arriendohq/arriendo/internal/di"
	"github.com/arriendohq/arriendo/internal/tools/common"
)

type options struct {
	envFile string
	demo    bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Database migration and seed tooling"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.AddCommand(newApplyCommand(opts), newDemoCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Run migrations and install default notification templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
}

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run migrations and load the demo dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.demo = true
			return run(opts)
		},
	}
}

func run(opts *options) error {
	if err := common.LoadEnvFile(opts.envFile); err != nil {
		return err
	}
	// The demo flag must be explicit; it is read from the same config key
	// the server uses at startup.
	if opts.demo {
		if err := os.Setenv("SEED_DEMO_FIXTURES", "true"); err != nil {
			return err
		}
	}
	runner, err := di.InitializeMigrationRunner()
	if err != nil {
		return err
	}
	if err := runner.Run(); err != nil {
		return err
	}
	if opts.demo {
		fmt.Println("migrations applied, demo dataset loaded")
	} else {
		fmt.Println("migrations applied, default templates installed")
	}
	return nil
}
