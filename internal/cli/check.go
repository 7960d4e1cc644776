package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"climbreg/internal/exam"
	"climbreg/internal/exam/models"
	id "climbreg/pkg/domain"
)

type certificateView struct {
	*models.Certificate
	Valid  bool          `json:"valid"`
	Status models.Status `json:"status"`
}

var statusColors = map[models.Status]color.Attribute{
	models.StatusValid:   color.FgGreen,
	models.StatusExpired: color.FgRed,
	models.StatusInvalid: color.FgYellow,
}

// CheckCmd shows a climber's authoritative certificate.
func CheckCmd(run runner) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check CODE",
		Short: "Show a climber's certificate",
		Long: `Show the authoritative certificate for a climber, read from the exam
sheet and labelled VALID, EXPIRED or INVALID for today.

Lookups are cached in Redis when CLIMBREG_REDIS_URL is set. Otherwise
the cache only lives for the current process, so every run reads the
sheet.`,
		Args: cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			code, err := id.ParseIDCode(args[0])
			if err != nil {
				return err
			}
			cert, err := app.Exams.FindByIDCode(cmd.Context(), code)
			if err != nil {
				return err
			}
			status := cert.StatusOn(app.Now())

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(certificateView{
					Certificate: cert,
					Valid:       status == models.StatusValid,
					Status:      status,
				})
			}

			label := color.New(statusColors[status]).Sprint(strings.ToUpper(string(status)))
			fmt.Fprintf(out, "Name:        %s\n", cert.Name)
			fmt.Fprintf(out, "Certificate: %s\n", cert.Kind)
			fmt.Fprintf(out, "Examiner:    %s\n", cert.Examiner)
			fmt.Fprintf(out, "Exam date:   %s\n", exam.FormatDate(cert.ExamDate))
			fmt.Fprintf(out, "Expires:     %s  %s\n", exam.FormatDate(cert.ExpiryDate), label)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the certificate as JSON")

	return cmd
}
