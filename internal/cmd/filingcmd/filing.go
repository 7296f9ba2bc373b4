// Package filingcmd provides commands for filing records.
package filingcmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/filing"
)

// NewCmdFiling creates the filing command.
func NewCmdFiling() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "filing",
		Aliases: []string{"filings"},
		Short:   "Work with filing records",
		Long: `Commands for previewing the analysis stored in filing records.

A filing record is a JSON object with form_type, company_name, ticker and
either a unified_analysis string or the legacy per-field analyses of its
form type.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdFields())
	cmd.AddCommand(NewCmdForms())

	return cmd
}

// loadRecord reads a record from path, or from stdin when path is "-".
func loadRecord(path string, stdin io.Reader) (*filing.Record, error) {
	if path == "-" {
		return filing.Decode(stdin)
	}
	return filing.Load(path)
}
