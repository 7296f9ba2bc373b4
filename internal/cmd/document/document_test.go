package document

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
)

const sampleAnalysis = "### Overview\n\nRevenue grew **42%** on __strong__ demand.\n\n---\n\n## Outlook\n\nGuidance is *cautious*."

// newTestInput builds input options that read text and write to the
// returned buffer.
func newTestInput(t *testing.T, text, format string) (inputOptions, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return inputOptions{
		stdin:  strings.NewReader(text),
		stdout: &out,
		settings: &cmdutil.Settings{
			CharsPerPage: 2000,
			Output:       format,
			NoColor:      true,
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}, &out
}

// paragraphs returns n paragraphs of exactly size characters each.
func paragraphs(n, size int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strings.Repeat(string(rune('a'+i)), size)
	}
	return strings.Join(parts, "\n\n")
}
