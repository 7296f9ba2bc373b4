package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/filing-cli/pkg/md"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"empty (default)", "", false},
		{"table", "table", false},
		{"json", "json", false},
		{"plain", "plain", false},
		{"invalid", "invalid", true},
		{"xml", "xml", true},
		{"TABLE uppercase", "TABLE", true}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	formats := ValidFormats()
	assert.Equal(t, []string{"table", "json", "plain"}, formats)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"empty string", "", 10, ""},
		{"unicode runes", "营收增长显著超出预期", 6, "营收增..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestRenderer_RenderTable_Table(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"PAGE", "CHARS"}, [][]string{
		{"1", "1900"},
		{"2", "522"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "PAGE  CHARS", lines[0])
	assert.Equal(t, "1     1900", lines[1])
	assert.Equal(t, "2     522", lines[2])
}

func TestRenderer_RenderTable_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"PAGE", "CHARS"}, [][]string{{"1", "1900"}, {"2", "522"}})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0]["page"])
	assert.Equal(t, "1900", result[0]["chars"])
}

func TestRenderer_RenderTable_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"PAGE", "CHARS"}, [][]string{{"1", "1900"}, {"2", "522"}})

	// Plain format uses tabs and omits headers
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"1\t1900", "2\t522"}, lines)
}

func TestRenderer_EmptyTable_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"PAGE"}, nil)

	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestRenderer_RenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderJSON([]string{"page one", "page two"}))

	var result []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, []string{"page one", "page two"}, result)
}

func TestRenderer_RenderKeyValue(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderKeyValue("Source", "unified_analysis")
	assert.Equal(t, "Source: unified_analysis\n", buf.String())
}

func TestRenderer_RenderKeyValue_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	r.RenderKeyValue("source", `say "hi"`)
	assert.Equal(t, `{"source":"say \"hi\""}`, strings.TrimSpace(buf.String()))
}

func TestRenderer_RenderDocument(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderDocument(md.Parse("### SECTION 1\n## Overview\n---\nRevenue grew **42%** on __demand__ *again*."))

	want := "SECTION 1\n\nOverview\n\n" + strings.Repeat("─", 40) + "\n\nRevenue grew 42% on demand again.\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderer_SuccessAndError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.Success("Configuration saved")
	r.Error("Something went wrong")

	assert.Equal(t, "✓ Configuration saved\n✗ Something went wrong\n", buf.String())
}
