package cli

import (
	"context"

	"github.com/spf13/cobra"

	platformMetrics "climbreg/internal/platform/metrics"
)

// Loader builds the App a command runs against.
type Loader func(ctx context.Context) (*App, error)

// NewRootCmd returns the climbreg command tree.
func NewRootCmd(load Loader) *cobra.Command {
	var metricsFile string

	root := &cobra.Command{
		Use:   "climbreg",
		Short: "Climbing certificate and card registry",
		Long: `climbreg looks up climbing certificates in the club registry sheet,
assigns physical membership cards and records new exam results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the command")

	run := func(fn func(cmd *cobra.Command, app *App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) (err error) {
			app, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := app.Close(); err == nil {
					err = closeErr
				}
				if metricsFile != "" && err == nil {
					err = platformMetrics.WriteTextfile(metricsFile, app.Registry)
				}
			}()
			return fn(cmd, app, args)
		}
	}

	root.AddCommand(ValidateCmd())
	root.AddCommand(CheckCmd(run))
	root.AddCommand(CardCmd(run))
	root.AddCommand(AssignCmd(run))
	root.AddCommand(RegisterCmd(run))
	root.AddCommand(AuditCmd(run))

	return root
}

// runner adapts a command body that needs an App into a cobra RunE.
type runner func(fn func(cmd *cobra.Command, app *App, args []string) error) func(*cobra.Command, []string) error
