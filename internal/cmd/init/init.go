// Package init provides the init command for fil.
package init

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/config"
	"github.com/open-cli-collective/filing-cli/internal/logging"
	"github.com/open-cli-collective/filing-cli/internal/view"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

type initOptions struct {
	configPath string
	chars      int
	format     string
	level      string
	force      bool
	noInput    bool
	out        io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize fil configuration",
		Long: `Initialize fil with your preferred page size and output settings.

This command will guide you through choosing the number of characters per
page, the default output format and the log level. The configuration will be
saved to ~/.config/fil/config.yml.`,
		Example: `  # Interactive setup
  fil init

  # Pre-populate the page size
  fil init --chars 1500

  # Non-interactive setup
  fil init --chars 1500 --format json --no-input --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			if opts.configPath == "" {
				opts.configPath = config.DefaultConfigPath()
			}
			opts.out = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().IntVar(&opts.chars, "chars", 0, "Characters per page")
	cmd.Flags().StringVar(&opts.format, "format", "", "Default output format: table, json, plain")
	cmd.Flags().StringVar(&opts.level, "level", "", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration without asking")
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "Save the flag values without prompting")

	return cmd
}

func runInit(opts *initOptions) error {
	// Check if config already exists
	if _, err := os.Stat(opts.configPath); err == nil && !opts.force {
		if opts.noInput {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", opts.configPath)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", opts.configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(opts.out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		CharsPerPage: opts.chars,
		OutputFormat: opts.format,
		LogLevel:     opts.level,
	}
	cfg.ApplyDefaults()

	if !opts.noInput {
		if err := newForm(cfg).Run(); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(opts.configPath); err != nil {
		return err
	}

	fmt.Fprintf(opts.out, "\nConfiguration saved to %s\n", opts.configPath)
	fmt.Fprintln(opts.out, "\nYou're all set! Try running:")
	fmt.Fprintln(opts.out, "  fil paginate analysis.txt")
	fmt.Fprintln(opts.out, "  fil view analysis.txt --page 1")

	return nil
}

// newForm builds the interactive form, writing answers into cfg.
func newForm(cfg *config.Config) *huh.Form {
	chars := strconv.Itoa(cfg.CharsPerPage)

	formats := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		formats = append(formats, huh.NewOption(f, f))
	}
	levels := make([]huh.Option[string], 0, len(logging.Levels))
	for _, l := range logging.Levels {
		levels = append(levels, huh.NewOption(l, l))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Characters per page").
				Description("Soft page budget; pages may grow to 1.5x to keep paragraphs whole").
				Placeholder(strconv.Itoa(md.DefaultCharsPerPage)).
				Value(&chars).
				Validate(func(s string) error {
					n, err := parseChars(s)
					if err != nil {
						return err
					}
					cfg.CharsPerPage = n
					return nil
				}),

			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for command output").
				Options(formats...).
				Value(&cfg.OutputFormat),

			huh.NewSelect[string]().
				Title("Log level").
				Description("Diagnostics are written to stderr").
				Options(levels...).
				Value(&cfg.LogLevel),
		),
	)
}

// parseChars parses a positive page budget.
func parseChars(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("characters per page must be a positive number")
	}
	return n, nil
}
