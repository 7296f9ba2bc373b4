package document

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/view"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

type viewOptions struct {
	inputOptions
	page  int
	chars int
	all   bool
}

// NewCmdView creates the view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Preview a page of analysis text",
		Long:  `Paginate analysis text and print a styled preview of one page.`,
		Example: `  # Preview the first page
  fil view analysis.txt

  # Preview page 3 with 1000 characters per page
  fil view analysis.txt --page 3 --chars 1000

  # Preview every page
  fil view analysis.txt --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd, args); err != nil {
				return err
			}
			return runView(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to preview (1-based)")
	cmd.Flags().IntVar(&opts.chars, "chars", 0, "Characters per page (default from config)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Preview every page")

	return cmd
}

func runView(opts *viewOptions) error {
	text, err := opts.read()
	if err != nil {
		return err
	}

	pages := md.Layout(text, opts.budget(opts.chars), opts.mdOptions()...)
	total := len(pages)
	if !opts.all {
		page, err := selectPage(pages, opts.page)
		if err != nil {
			return err
		}
		pages = []md.Page{page}
	}

	renderer := opts.settings.Renderer(opts.stdout)
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(pages)
	}

	for i, p := range pages {
		if i > 0 {
			fmt.Fprintln(opts.stdout)
		}
		renderPage(renderer, p, total)
	}
	return nil
}

func renderPage(renderer *view.Renderer, p md.Page, total int) {
	renderer.RenderKeyValue("Page", fmt.Sprintf("%d/%d", p.Number, total))
	renderer.RenderText("")
	renderer.RenderDocument(p.Document)
}
