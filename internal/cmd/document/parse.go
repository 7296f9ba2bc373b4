package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/view"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

type parseOptions struct {
	inputOptions
	page  int
	chars int
}

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse analysis text into a document model",
		Long: `Parse analysis text into blocks and inline segments.

Without --page the whole text is parsed. With --page the text is paginated
first and only the selected page is parsed.`,
		Example: `  # Print the document model as JSON
  fil parse analysis.txt -o json

  # List the blocks of the second page
  fil parse analysis.txt --page 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd, args); err != nil {
				return err
			}
			return runParse(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "Parse only this page (1-based)")
	cmd.Flags().IntVar(&opts.chars, "chars", 0, "Characters per page (default from config)")

	return cmd
}

func runParse(opts *parseOptions) error {
	text, err := opts.read()
	if err != nil {
		return err
	}

	doc, err := documentFor(&opts.inputOptions, text, opts.page, opts.chars)
	if err != nil {
		return err
	}

	renderer := opts.settings.Renderer(opts.stdout)
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(doc)
	}

	headers := []string{"#", "TYPE", "CONTENT"}
	rows := make([][]string, 0, len(doc.Blocks))
	for i, b := range doc.Blocks {
		rows = append(rows, []string{strconv.Itoa(i + 1), string(b.Type), describeBlock(b)})
	}
	renderer.RenderTable(headers, rows)
	return nil
}

// documentFor parses the whole text, or one page of it when page > 0.
func documentFor(opts *inputOptions, text string, page, chars int) (md.Document, error) {
	if page == 0 {
		return md.Parse(text, opts.mdOptions()...), nil
	}
	p, err := selectPage(md.Layout(text, opts.budget(chars), opts.mdOptions()...), page)
	if err != nil {
		return md.Document{}, err
	}
	return p.Document, nil
}

// describeBlock renders a block on one line, showing each segment's kind.
func describeBlock(b md.Block) string {
	if b.Type != md.BlockParagraph {
		return b.Text
	}
	parts := make([]string, 0, len(b.Segments))
	for _, seg := range b.Segments {
		parts = append(parts, fmt.Sprintf("%s:%q", seg.Kind, seg.Text))
	}
	return strings.Join(parts, " ")
}
