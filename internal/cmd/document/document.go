// Package document provides the commands that paginate, parse, preview and
// convert analysis text.
package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

// inputOptions are shared by every command that reads analysis text.
type inputOptions struct {
	file     string
	stdin    io.Reader
	stdout   io.Writer
	settings *cmdutil.Settings
}

func (o *inputOptions) load(cmd *cobra.Command, args []string) error {
	settings, err := cmdutil.LoadSettings(cmd)
	if err != nil {
		return err
	}
	o.file = cmdutil.FileArg(args)
	o.stdin = cmd.InOrStdin()
	o.stdout = cmd.OutOrStdout()
	o.settings = settings
	return nil
}

func (o *inputOptions) read() (string, error) {
	return cmdutil.ReadInput(o.file, o.stdin)
}

// budget returns the flag value when set, else the configured page size.
func (o *inputOptions) budget(chars int) int {
	if chars > 0 {
		return chars
	}
	return o.settings.CharsPerPage
}

func (o *inputOptions) mdOptions() []md.Option {
	return []md.Option{md.WithLogger(o.settings.Logger)}
}

// selectPage returns page n (1-based) of pages.
func selectPage(pages []md.Page, n int) (md.Page, error) {
	if n < 1 || n > len(pages) {
		return md.Page{}, fmt.Errorf("page %d out of range (1-%d)", n, len(pages))
	}
	return pages[n-1], nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
