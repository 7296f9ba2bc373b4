package filingcmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/internal/filing"
	"github.com/open-cli-collective/filing-cli/internal/view"
)

// NewCmdForms creates the filing forms command.
func NewCmdForms() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forms",
		Short: "List supported form types",
		Long:  `List the supported form types and the legacy analysis fields assembled for each.`,
		Example: `  # List form types
  fil filing forms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := cmdutil.LoadSettings(cmd)
			if err != nil {
				return err
			}
			return runForms(settings, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runForms(settings *cmdutil.Settings, w io.Writer) error {
	renderer := settings.Renderer(w)

	if renderer.Format() == view.FormatJSON {
		forms := make(map[filing.FormType][]string)
		for _, ft := range filing.FormTypes() {
			forms[ft] = filing.LegacyFields(ft)
		}
		return renderer.RenderJSON(forms)
	}

	rows := make([][]string, 0, len(filing.FormTypes()))
	for _, ft := range filing.FormTypes() {
		rows = append(rows, []string{string(ft), strings.Join(filing.LegacyFields(ft), ", ")})
	}
	renderer.RenderTable([]string{"FORM", "FIELDS"}, rows)
	return nil
}
