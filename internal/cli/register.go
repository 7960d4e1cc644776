package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"climbreg/internal/exam"
	"climbreg/internal/exam/models"
	id "climbreg/pkg/domain"
	dErrors "climbreg/pkg/domain-errors"
)

// RegisterCmd records a passed exam.
func RegisterCmd(run runner) *cobra.Command {
	var (
		name     string
		email    string
		kind     string
		examDate string
		examiner string
		comment  string
	)

	cmd := &cobra.Command{
		Use:   "register CODE",
		Short: "Record a passed exam",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			code, err := id.ParseIDCode(args[0])
			if err != nil {
				return err
			}
			date, ok, err := exam.ParseDate(examDate)
			if err != nil || !ok {
				return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("exam date %q is not a date", examDate))
			}

			row, err := app.Exams.Register(cmd.Context(), models.Registration{
				IDCode:   code,
				Name:     name,
				Email:    email,
				Kind:     models.ParseKind(kind),
				ExamDate: date,
				Comment:  comment,
				Examiner: examiner,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s), valid until %s\n",
				color.New(color.FgGreen).Sprint("registered"), row.Name, row.Certificate, row.ExpiryDate)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "climber's full name")
	cmd.Flags().StringVar(&email, "email", "", "climber's email")
	cmd.Flags().StringVar(&kind, "kind", "", "certificate kind: green or red")
	cmd.Flags().StringVar(&examDate, "exam-date", "", "date of the exam")
	cmd.Flags().StringVar(&examiner, "examiner", "", "examiner's name")
	cmd.Flags().StringVar(&comment, "comment", "", "free-form note")
	for _, f := range []string{"name", "email", "kind", "exam-date", "examiner"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
