// Package cmdutil holds helpers shared by fil commands: resolving global
// settings and reading analysis input.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/filing-cli/internal/config"
	"github.com/open-cli-collective/filing-cli/internal/logging"
	"github.com/open-cli-collective/filing-cli/internal/view"
)

// ErrNoInput is returned when neither a file nor piped stdin is available.
var ErrNoInput = errors.New("no input: pass a file argument or pipe text on stdin")

// Settings are the resolved global options for a command run.
type Settings struct {
	CharsPerPage int
	Output       string
	NoColor      bool
	Logger       *slog.Logger
}

// LoadSettings merges the config file, environment and global flags.
// Flags win over environment, which wins over the file.
func LoadSettings(cmd *cobra.Command) (*Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputFormat = output
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	return &Settings{
		CharsPerPage: cfg.CharsPerPage,
		Output:       cfg.OutputFormat,
		NoColor:      noColor,
		Logger:       logging.New(cmd.ErrOrStderr(), cfg.LogLevel),
	}, nil
}

// Renderer returns a view renderer writing to w in the configured format.
func (s *Settings) Renderer(w io.Writer) *view.Renderer {
	r := view.NewRenderer(view.Format(s.Output), s.NoColor)
	r.SetWriter(w)
	return r
}

// ReadInput returns the contents of path, or of stdin when path is empty
// or "-". An interactive terminal on stdin is reported as ErrNoInput.
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", ErrNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// WriteOutput writes content to path, or to w when path is empty.
func WriteOutput(path string, w io.Writer, content string) error {
	if path == "" {
		_, err := io.WriteString(w, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FileArg returns the first positional argument, or "" when there is none.
func FileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
