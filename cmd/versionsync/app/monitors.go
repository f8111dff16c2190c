package app

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uptimekit/versionsync/pkg/logging"
)

// NewMonitorsCommand creates the monitors command, a debugging aid that
// lists the monitors visible to the configured session. Useful for
// checking that monitorName values in the service configuration match
// the monitoring system exactly.
func (a *App) NewMonitorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "List monitors visible to the configured session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.logger)

			client, err := a.KumaClient()
			if err != nil {
				return err
			}
			if err := client.Login(ctx); err != nil {
				return err
			}

			monitors, err := client.Monitors(ctx)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name"})
			for _, m := range monitors {
				t.AppendRow(table.Row{m.ID, m.Name})
			}
			t.Render()

			return nil
		},
	}
}
