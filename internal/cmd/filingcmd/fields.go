package filingcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/internal/view"
)

type fieldsOptions struct {
	stdin    io.Reader
	stdout   io.Writer
	settings *cmdutil.Settings
}

// NewCmdFields creates the filing fields command.
func NewCmdFields() *cobra.Command {
	opts := &fieldsOptions{}

	cmd := &cobra.Command{
		Use:   "fields <record.json>",
		Short: "Report legacy analysis field coverage",
		Long:  `List the legacy analysis fields expected for a filing's form type and whether each one has content.`,
		Example: `  # Check which legacy fields a 10-Q record carries
  fil filing fields msft-10q.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdutil.LoadSettings(cmd)
			if err != nil {
				return err
			}
			opts.settings = settings
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runFields(args[0], opts)
		},
	}

	return cmd
}

func runFields(path string, opts *fieldsOptions) error {
	rec, err := loadRecord(path, opts.stdin)
	if err != nil {
		return err
	}

	statuses, err := rec.Coverage()
	if err != nil {
		return err
	}

	renderer := opts.settings.Renderer(opts.stdout)
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(statuses)
	}

	present := 0
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		mark := "✗"
		if s.Present {
			mark = "✓"
			present++
		}
		rows = append(rows, []string{s.Name, mark})
	}
	renderer.RenderTable([]string{"FIELD", "PRESENT"}, rows)

	if renderer.Format() == view.FormatTable {
		fmt.Fprintf(opts.stdout, "\n%d of %d fields present\n", present, len(statuses))
	}
	return nil
}
