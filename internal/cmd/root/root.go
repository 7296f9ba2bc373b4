// Package root provides the root command for the fil CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/cmd/completion"
	"github.com/open-cli-collective/filing-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/filing-cli/internal/cmd/document"
	"github.com/open-cli-collective/filing-cli/internal/cmd/filingcmd"
	initcmd "github.com/open-cli-collective/filing-cli/internal/cmd/init"
	"github.com/open-cli-collective/filing-cli/internal/cmd/search"
	"github.com/open-cli-collective/filing-cli/internal/logging"
	"github.com/open-cli-collective/filing-cli/internal/version"
	"github.com/open-cli-collective/filing-cli/internal/view"
)

// NewCmdRoot creates the root command for fil.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fil",
		Short: "Paginate and preview AI-written filing analyses",
		Long: `fil turns long annotated filing analyses into bounded pages and
structured documents.

Analysis text uses a small markup: ### section titles, ## subheaders,
--- separators, __bold__, *italic* and **highlighted** spans. Commands read
a file argument or stdin and print pages, document models, previews and
HTML or markdown exports.

Get started by running: fil init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/fil/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain (default from config)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default from config)")

	_ = cmd.RegisterFlagCompletionFunc("output", fixedCompletions(view.ValidFormats()))
	_ = cmd.RegisterFlagCompletionFunc("log-level", fixedCompletions(logging.Levels))

	// Set version template
	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(document.NewCmdPaginate())
	cmd.AddCommand(document.NewCmdParse())
	cmd.AddCommand(document.NewCmdView())
	cmd.AddCommand(document.NewCmdExport())
	cmd.AddCommand(document.NewCmdImport())
	cmd.AddCommand(search.NewCmdSearch())
	cmd.AddCommand(filingcmd.NewCmdFiling())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

func fixedCompletions(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
