package document

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

// Export targets.
const (
	exportHTML     = "html"
	exportMarkdown = "markdown"
	exportMarkup   = "markup"
	exportText     = "text"
)

var exportTargets = []string{exportHTML, exportMarkdown, exportMarkup, exportText}

type exportOptions struct {
	inputOptions
	to    string
	page  int
	chars int
	out   string
}

// NewCmdExport creates the export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert analysis text to HTML or markdown",
		Long: `Convert analysis text to another format.

Targets:
  html      HTML via CommonMark, highlights as <mark>
  markdown  CommonMark markdown
  markup    normalized analysis markup
  text      plain text with all markup removed`,
		Example: `  # Export an analysis as HTML
  fil export analysis.txt --to html --out analysis.html

  # Export page 2 as markdown
  fil export analysis.txt --to markdown --page 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd, args); err != nil {
				return err
			}
			return runExport(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.to, "to", "t", exportMarkdown, "Target format: "+strings.Join(exportTargets, ", "))
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "Export only this page (1-based)")
	cmd.Flags().IntVar(&opts.chars, "chars", 0, "Characters per page (default from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write to file instead of stdout")

	return cmd
}

func runExport(opts *exportOptions) error {
	text, err := opts.read()
	if err != nil {
		return err
	}

	doc, err := documentFor(&opts.inputOptions, text, opts.page, opts.chars)
	if err != nil {
		return err
	}

	content, err := exportDocument(doc, opts.to)
	if err != nil {
		return err
	}
	return cmdutil.WriteOutput(opts.out, opts.stdout, content)
}

func exportDocument(doc md.Document, to string) (string, error) {
	switch to {
	case exportHTML:
		html, err := md.ToHTML(doc)
		if err != nil {
			return "", fmt.Errorf("failed to render HTML: %w", err)
		}
		return html, nil
	case exportMarkdown:
		return md.ToMarkdown(doc), nil
	case exportMarkup:
		return withNewline(md.RenderMarkup(doc)), nil
	case exportText:
		return withNewline(doc.PlainText()), nil
	default:
		return "", fmt.Errorf("invalid export target %q: must be one of %s", to, strings.Join(exportTargets, ", "))
	}
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
