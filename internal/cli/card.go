package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	id "climbreg/pkg/domain"
)

// CardCmd shows the card a climber holds.
func CardCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "card CODE",
		Short: "Show the card assigned to a climber",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			code, err := id.ParseIDCode(args[0])
			if err != nil {
				return err
			}
			card, err := app.Cards.FindByClimber(cmd.Context(), code)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if card == nil {
				fmt.Fprintf(out, "%s holds no card\n", code)
				return nil
			}
			fmt.Fprintf(out, "%s  %s\n", card.IssuedCardID, card.Kind())
			if card.IssuedAt != "" || card.IssuedBy != "" {
				fmt.Fprintf(out, "   issued %s by %s\n", card.IssuedAt, card.IssuedBy)
			}
			return nil
		}),
	}
}

// AssignCmd gives a card to a climber.
func AssignCmd(run runner) *cobra.Command {
	var operator string

	cmd := &cobra.Command{
		Use:   "assign CODE CARD-ID",
		Short: "Assign a physical card to a certified climber",
		Long: `Assign a free card to a climber whose certificate matches the card's
colour. Any card the climber held before is released once the new one is
recorded.`,
		Args: cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			code, err := id.ParseIDCode(args[0])
			if err != nil {
				return err
			}
			if err := app.Cards.Assign(cmd.Context(), code, args[1], operator); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s to %s\n",
				color.New(color.FgGreen).Sprint("assigned"), args[1], code)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&operator, "operator", "o", os.Getenv("USER"), "name recorded as the issuer")

	return cmd
}
