package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	id "climbreg/pkg/domain"
	"climbreg/pkg/platform/strings"
)

// ValidateCmd checks identity codes offline.
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate CODE...",
		Short: "Check identity codes against their checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			codes := strings.DedupeAndTrim(args)
			invalid := 0
			for _, code := range codes {
				if id.IsValidIDCode(code) {
					fmt.Fprintf(out, "%s  %s\n", code, color.New(color.FgGreen).Sprint("valid"))
					continue
				}
				invalid++
				fmt.Fprintf(out, "%s  %s\n", code, color.New(color.FgRed).Sprint("invalid"))
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d identity codes invalid", invalid, len(codes))
			}
			return nil
		},
	}
}
