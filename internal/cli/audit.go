package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	id "climbreg/pkg/domain"
)

// AuditCmd lists the recorded actions for a climber.
func AuditCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "audit CODE",
		Short: "List recorded card and exam actions for a climber",
		Long: `List the card and exam actions recorded for a climber.

Actions are stored in PostgreSQL when CLIMBREG_DATABASE_URL is set.
Without it the trail is held in memory and only covers actions taken
earlier in the same process.`,
		Args: cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			code, err := id.ParseIDCode(args[0])
			if err != nil {
				return err
			}
			events, err := app.Audit.List(cmd.Context(), code.String())
			if err != nil {
				return err
			}

			if !app.AuditPersisted {
				fmt.Fprintln(cmd.ErrOrStderr(), "note: audit trail is in memory for this run only; set CLIMBREG_DATABASE_URL to persist it")
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintf(out, "no recorded actions for %s\n", code)
				return nil
			}
			for _, e := range events {
				fmt.Fprintf(out, "%s  %-26s %-12s %s", e.Timestamp.Format(time.RFC3339), e.Action, e.Resource, e.ActorID)
				if e.Reason != "" {
					fmt.Fprintf(out, "  (%s)", e.Reason)
				}
				fmt.Fprintln(out)
			}
			return nil
		}),
	}
}
