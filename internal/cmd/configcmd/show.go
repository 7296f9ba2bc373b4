package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective fil configuration and where each value comes from.`,
		Example: `  # Show current config
  fil config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(configPath(cmd), cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runShow(configPath string, w io.Writer, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-16s", label+":")
		fmt.Fprint(w, value)

		source := "default"
		switch {
		case os.Getenv(envVar) != "":
			source = envVar
		case fileValue != "":
			source = "config"
		}
		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Chars per page", strconv.Itoa(cfg.CharsPerPage), nonZero(fileCfg.CharsPerPage), config.EnvCharsPerPage)
	printField("Output format", cfg.OutputFormat, fileCfg.OutputFormat, config.EnvOutputFormat)
	printField("Log level", cfg.LogLevel, fileCfg.LogLevel, config.EnvLogLevel)

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}

func nonZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
