package document

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

type importOptions struct {
	inputOptions
	out string
}

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Convert an HTML analysis to analysis markup",
		Long: `Convert a legacy HTML analysis to analysis markup.

Top-level headings become section titles, lower headings become subheaders,
<strong> becomes bold, <em> becomes italic and <mark> becomes a highlight.`,
		Example: `  # Convert an HTML analysis
  fil import analysis.html --out analysis.txt

  # Convert and preview in one pipeline
  fil import analysis.html | fil view`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd, args); err != nil {
				return err
			}
			return runImport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Write to file instead of stdout")

	return cmd
}

func runImport(opts *importOptions) error {
	html, err := opts.read()
	if err != nil {
		return err
	}

	markup, err := md.FromHTML(html)
	if err != nil {
		return fmt.Errorf("failed to convert HTML: %w", err)
	}

	opts.settings.Logger.Debug("html imported", "bytes", len(html), "blocks", len(md.Parse(markup).Blocks))
	return cmdutil.WriteOutput(opts.out, opts.stdout, withNewline(markup))
}
