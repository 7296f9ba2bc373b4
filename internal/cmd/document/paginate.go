package document

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/view"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

// pageBreak separates pages in plain output.
const pageBreak = "\f"

type paginateOptions struct {
	inputOptions
	chars int
}

// NewCmdPaginate creates the paginate command.
func NewCmdPaginate() *cobra.Command {
	opts := &paginateOptions{}

	cmd := &cobra.Command{
		Use:   "paginate [file]",
		Short: "Split analysis text into pages",
		Long: `Split analysis text into pages of roughly --chars characters.

Pages break only between paragraphs. A section title or separator starts a
new page once the current page has reached three quarters of the budget.`,
		Example: `  # Summarise the pages of an analysis
  fil paginate analysis.txt

  # Print the page texts as JSON
  fil paginate analysis.txt -o json

  # Read from stdin with a smaller page size
  cat analysis.txt | fil paginate --chars 800`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd, args); err != nil {
				return err
			}
			return runPaginate(opts)
		},
	}

	cmd.Flags().IntVar(&opts.chars, "chars", 0, "Characters per page (default from config)")

	return cmd
}

func runPaginate(opts *paginateOptions) error {
	text, err := opts.read()
	if err != nil {
		return err
	}

	pages := md.Paginate(text, opts.budget(opts.chars), opts.mdOptions()...)
	renderer := opts.settings.Renderer(opts.stdout)

	switch renderer.Format() {
	case view.FormatJSON:
		return renderer.RenderJSON(pages)
	case view.FormatPlain:
		for i, p := range pages {
			if i > 0 {
				fmt.Fprintln(opts.stdout, pageBreak)
			}
			fmt.Fprintln(opts.stdout, p)
		}
		return nil
	}

	headers := []string{"PAGE", "CHARS", "PARAGRAPHS", "START"}
	rows := make([][]string, 0, len(pages))
	for i, p := range pages {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(utf8.RuneCountInString(p)),
			strconv.Itoa(len(md.SplitParagraphs(p))),
			view.Truncate(firstLine(p), 50),
		})
	}
	renderer.RenderTable(headers, rows)
	return nil
}
