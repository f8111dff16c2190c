package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the versionsync CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "versionsync",
		Short:   "Sync Uptime Kuma version tags with deployed services",
		Version: a.version,
		Long: `Versionsync keeps Uptime Kuma monitor tags in sync with the versions
reported by deployed services. For each configured service it fetches the
live version from an HTTP endpoint and makes "{prefix}-{version}" the only
version-like tag on the matching monitor.

It is designed to run unattended on a fixed schedule, typically as a
Kubernetes CronJob, and exits non-zero when any service fails so the
scheduler can surface the failure.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("versionsync {{.Version}}\n")

	rootCmd.AddCommand(a.NewSyncCommand())
	rootCmd.AddCommand(a.NewMonitorsCommand())
	rootCmd.AddCommand(a.NewVersionCommand())

	return rootCmd
}

// setupCommand is called before any command runs and reconfigures the
// logger from the parsed flags.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	logger := a.reconfigureLogger()
	a.logger = &logger
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
