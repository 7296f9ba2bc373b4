package filingcmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/internal/filing"
	"github.com/open-cli-collective/filing-cli/internal/view"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

type showOptions struct {
	page     int
	all      bool
	chars    int
	stdin    io.Reader
	stdout   io.Writer
	settings *cmdutil.Settings
}

// showResult is the JSON form of a previewed filing.
type showResult struct {
	ID          string        `json:"id,omitempty"`
	FormType    string        `json:"form_type"`
	CompanyName string        `json:"company_name,omitempty"`
	Ticker      string        `json:"ticker,omitempty"`
	Source      filing.Source `json:"source"`
	TotalPages  int           `json:"total_pages"`
	Pages       []md.Page     `json:"pages"`
}

// NewCmdShow creates the filing show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <record.json>",
		Short: "Preview the analysis of a filing",
		Long: `Load a filing record, paginate its analysis and preview one page.

Records without a unified analysis are assembled from the legacy analysis
fields of their form type.`,
		Example: `  # Preview the first page of a filing analysis
  fil filing show aapl-10k.json

  # Preview every page as JSON
  fil filing show aapl-10k.json --all -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdutil.LoadSettings(cmd)
			if err != nil {
				return err
			}
			opts.settings = settings
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runShow(args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to preview (1-based)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Preview every page")
	cmd.Flags().IntVar(&opts.chars, "chars", 0, "Characters per page (default from config)")

	return cmd
}

func runShow(path string, opts *showOptions) error {
	rec, err := loadRecord(path, opts.stdin)
	if err != nil {
		return err
	}

	text, source, err := rec.AnalysisText()
	if err != nil {
		return fmt.Errorf("failed to assemble analysis for %s: %w", path, err)
	}

	logger := opts.settings.Logger
	logger.Debug("analysis assembled", slog.String("source", string(source)), slog.Int("chars", len([]rune(text))))

	budget := opts.chars
	if budget <= 0 {
		budget = opts.settings.CharsPerPage
	}
	pages := md.Layout(text, budget, md.WithLogger(logger))
	total := len(pages)

	if !opts.all {
		if opts.page < 1 || opts.page > total {
			return fmt.Errorf("page %d out of range (1-%d)", opts.page, total)
		}
		pages = pages[opts.page-1 : opts.page]
	}

	renderer := opts.settings.Renderer(opts.stdout)
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(showResult{
			ID:          rec.ID,
			FormType:    rec.FormType,
			CompanyName: rec.CompanyName,
			Ticker:      rec.Ticker,
			Source:      source,
			TotalPages:  total,
			Pages:       pages,
		})
	}

	renderer.RenderKeyValue("Company", orDash(rec.CompanyName))
	renderer.RenderKeyValue("Ticker", orDash(rec.Ticker))
	renderer.RenderKeyValue("Form", orDash(rec.FormType))
	renderer.RenderKeyValue("Source", string(source))
	renderer.RenderKeyValue("Pages", strconv.Itoa(total))

	for _, p := range pages {
		renderer.RenderText("")
		renderer.RenderKeyValue("Page", fmt.Sprintf("%d/%d", p.Number, total))
		renderer.RenderText("")
		renderer.RenderDocument(p.Document)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
