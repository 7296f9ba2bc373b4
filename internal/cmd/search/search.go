// Package search provides the search command for finding text in analysis pages.
package search

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/internal/view"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

type searchOptions struct {
	query     string
	file      string
	blockType string
	limit     int
	chars     int

	stdin    io.Reader
	stdout   io.Writer
	settings *cmdutil.Settings
}

// validTypes are the block types accepted by --type.
var validTypes = map[string]bool{
	string(md.BlockSectionTitle): true,
	string(md.BlockSubheader):    true,
	string(md.BlockParagraph):    true,
}

// Match is one block containing the query.
type Match struct {
	Page  int          `json:"page"`
	Block int          `json:"block"`
	Type  md.BlockType `json:"type"`
	Text  string       `json:"text"`
}

// NewCmdSearch creates the search command.
func NewCmdSearch() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query> [file]",
		Short: "Search analysis text",
		Long: `Search the blocks of an analysis for text, ignoring case and markup.

Matches are reported with the page and block they appear in, using the same
pagination as the paginate and view commands.`,
		Example: `  # Find every mention of guidance
  fil search guidance analysis.txt

  # Only search section titles
  fil search risk analysis.txt --type section_title

  # Output as JSON for scripting
  fil search margin analysis.txt -o json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.query = args[0]
			opts.file = cmdutil.FileArg(args[1:])

			settings, err := cmdutil.LoadSettings(cmd)
			if err != nil {
				return err
			}
			opts.settings = settings
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runSearch(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.blockType, "type", "t", "", "Block type: section_title, subheader, paragraph")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of results")
	cmd.Flags().IntVar(&opts.chars, "chars", 0, "Characters per page (default from config)")

	return cmd
}

func runSearch(opts *searchOptions) error {
	if opts.blockType != "" && !validTypes[opts.blockType] {
		validList := []string{string(md.BlockSectionTitle), string(md.BlockSubheader), string(md.BlockParagraph)}
		return fmt.Errorf("invalid type %q: must be one of %s", opts.blockType, strings.Join(validList, ", "))
	}
	if strings.TrimSpace(opts.query) == "" {
		return fmt.Errorf("search requires a non-empty query")
	}
	if opts.limit < 0 {
		return fmt.Errorf("invalid limit: %d (must be >= 0)", opts.limit)
	}

	text, err := cmdutil.ReadInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	budget := opts.chars
	if budget <= 0 {
		budget = opts.settings.CharsPerPage
	}
	pages := md.Layout(text, budget, md.WithLogger(opts.settings.Logger))
	matches := Find(pages, opts.query, md.BlockType(opts.blockType), opts.limit)

	renderer := opts.settings.Renderer(opts.stdout)
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(matches)
	}

	if len(matches) == 0 {
		renderer.RenderText("No results.")
		return nil
	}

	headers := []string{"PAGE", "BLOCK", "TYPE", "TEXT"}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			strconv.Itoa(m.Page),
			strconv.Itoa(m.Block),
			string(m.Type),
			view.Truncate(m.Text, 60),
		})
	}
	renderer.RenderTable(headers, rows)
	return nil
}

// Find returns up to limit blocks whose plain text contains query under
// Unicode case folding. An empty blockType matches every block; separators
// never match. Block numbers are 1-based within their page.
func Find(pages []md.Page, query string, blockType md.BlockType, limit int) []Match {
	fold := cases.Fold()
	needle := fold.String(query)

	matches := []Match{}
	for _, p := range pages {
		for i, b := range p.Document.Blocks {
			if len(matches) >= limit {
				return matches
			}
			if b.Type == md.BlockSeparator || (blockType != "" && b.Type != blockType) {
				continue
			}
			plain := b.PlainText()
			if strings.Contains(fold.String(plain), needle) {
				matches = append(matches, Match{Page: p.Number, Block: i + 1, Type: b.Type, Text: plain})
			}
		}
	}
	return matches
}
