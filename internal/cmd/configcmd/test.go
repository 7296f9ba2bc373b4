package configcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/config"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

// probeText is paginated to confirm the configured budget is usable.
const probeText = "### Probe\n\nConfiguration check."

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Validate the current configuration",
		Long:  `Load the configuration file and environment, validate every value and run a sample pagination.`,
		Example: `  # Test configuration
  fil config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(configPath(cmd), cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runTest(configPath string, w io.Writer, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w (run 'fil init' to configure)", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'fil init' to configure)", err)
	}

	pages := md.Paginate(probeText, cfg.CharsPerPage)

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	_, _ = green.Fprintln(w, "✓ Configuration is valid")
	_, _ = dim.Fprintf(w, "  %d characters per page, %s output, %s logging (%d sample page)\n",
		cfg.CharsPerPage, cfg.OutputFormat, cfg.LogLevel, len(pages))

	return nil
}
