package app

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uptimekit/versionsync/pkg/logging"
	"github.com/uptimekit/versionsync/pkg/reconcile"
)

// NewSyncCommand creates the sync command, the CronJob entry point.
func (a *App) NewSyncCommand() *cobra.Command {
	var (
		servicesFile string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one reconciliation pass over all configured services",
		Long: `Sync fetches the live version of every configured service and makes
"{prefix}-{version}" the only version-like tag on the matching Uptime Kuma
monitor. Services are processed in configuration order; a failing service
is reported and does not stop the rest. The command exits non-zero when
authentication fails or any service fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.logger)

			if servicesFile != "" {
				a.config.ServicesFile = servicesFile
			}
			services, err := a.config.Services()
			if err != nil {
				return err
			}

			client, err := a.KumaClient()
			if err != nil {
				return err
			}

			var opts []reconcile.RunnerOption
			if dryRun {
				opts = append(opts, reconcile.WithDryRun())
			}

			summary, err := reconcile.NewRunner(client, a.Fetcher(), opts...).Run(ctx, services)
			if err != nil {
				// Authentication failed: the run aborted before any
				// per-service work.
				return err
			}

			renderSummary(cmd.OutOrStdout(), summary)

			if !summary.Ok() {
				return fmt.Errorf("%d of %d services failed to reconcile", summary.Failed(), len(summary.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&servicesFile, "services", "", "services YAML file (overrides SERVICES_CONFIG)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute tag deltas without mutating anything")

	return cmd
}

// renderSummary writes the per-service outcomes as a table.
func renderSummary(w io.Writer, summary *reconcile.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Service", "Status", "Version", "Detail"})
	for _, r := range summary.Results {
		if r.Success() {
			detail := r.Tag
			if !r.Changed {
				detail += " (unchanged)"
			}
			t.AppendRow(table.Row{r.Service, "ok", r.Version, detail})
			continue
		}
		t.AppendRow(table.Row{r.Service, r.Kind(), r.Version, r.Err.Error()})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d succeeded, %d failed", summary.Succeeded(), summary.Failed())})

	t.Render()
}
