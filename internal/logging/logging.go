// Package logging builds the structured logger handed to the pagination core.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

// ValidateLevel checks that level is one of Levels. An empty level is valid.
func ValidateLevel(level string) error {
	if level == "" {
		return nil
	}
	for _, l := range Levels {
		if strings.EqualFold(level, l) {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q: must be one of %s", level, strings.Join(Levels, ", "))
}

// New returns a slog.Logger writing leveled, colorized key/value lines to w.
// Unknown or empty levels fall back to warn.
func New(w io.Writer, level string) *slog.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = log.WarnLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "fil",
	})
	return slog.New(handler)
}
