package filingcmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/filing-cli/internal/cmdutil"
	"github.com/open-cli-collective/filing-cli/internal/filing"
	"github.com/open-cli-collective/filing-cli/pkg/md"
)

const unifiedRecord = `{
	"id": 7,
	"form_type": "10-K",
	"company_name": "Acme Corp",
	"ticker": "ACME",
	"unified_analysis": "### Summary\n\nRevenue grew **42%**.\n\n## Risks\n\nSupply is *tight*."
}`

const legacyRecord = `{
	"form_type": "10q",
	"company_name": "Beta Inc",
	"beat_miss_analysis": "Beat on __revenue__.",
	"guidance_update": ["Raised FY guidance.", "Lowered Q3 margin."]
}`

func testSettings(format string) *cmdutil.Settings {
	return &cmdutil.Settings{
		CharsPerPage: 2000,
		Output:       format,
		NoColor:      true,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writeRecord(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRunShow_Unified(t *testing.T) {
	var out bytes.Buffer
	opts := &showOptions{page: 1, stdout: &out, settings: testSettings("table")}

	err := runShow(writeRecord(t, unifiedRecord), opts)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Company: Acme Corp")
	assert.Contains(t, output, "Ticker: ACME")
	assert.Contains(t, output, "Source: unified_analysis")
	assert.Contains(t, output, "Page: 1/1")
	assert.Contains(t, output, "Revenue grew 42%.")
}

func TestRunShow_LegacyJSON(t *testing.T) {
	var out bytes.Buffer
	opts := &showOptions{all: true, stdout: &out, settings: testSettings("json")}

	err := runShow(writeRecord(t, legacyRecord), opts)
	require.NoError(t, err)

	var result showResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, filing.SourceLegacy, result.Source)
	assert.Equal(t, "Beta Inc", result.CompanyName)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Pages, 1)

	blocks := result.Pages[0].Document.Blocks
	require.Len(t, blocks, 5)
	assert.Equal(t, md.Block{Type: md.BlockSectionTitle, Text: "Beat Miss Analysis"}, blocks[0])
	assert.Contains(t, blocks[1].Segments, md.Segment{Kind: md.SegmentBold, Text: "revenue"})
	assert.Equal(t, md.Block{Type: md.BlockSectionTitle, Text: "Guidance Update"}, blocks[2])
}

func TestRunShow_Stdin(t *testing.T) {
	var out bytes.Buffer
	opts := &showOptions{page: 1, stdin: strings.NewReader(unifiedRecord), stdout: &out, settings: testSettings("table")}

	err := runShow("-", opts)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Acme Corp")
}

func TestRunShow_NoAnalysis(t *testing.T) {
	opts := &showOptions{page: 1, stdout: &bytes.Buffer{}, settings: testSettings("table")}

	err := runShow(writeRecord(t, `{"form_type": "8-K"}`), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, filing.ErrNoAnalysis))
}

func TestRunShow_PageOutOfRange(t *testing.T) {
	opts := &showOptions{page: 3, stdout: &bytes.Buffer{}, settings: testSettings("table")}

	err := runShow(writeRecord(t, unifiedRecord), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 3 out of range (1-1)")
}

func TestRunShow_MissingFile(t *testing.T) {
	opts := &showOptions{page: 1, stdout: &bytes.Buffer{}, settings: testSettings("table")}

	err := runShow(filepath.Join(t.TempDir(), "missing.json"), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read filing record")
}

func TestRunFields_Table(t *testing.T) {
	var out bytes.Buffer
	opts := &fieldsOptions{stdout: &out, settings: testSettings("table")}

	err := runFields(writeRecord(t, legacyRecord), opts)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "beat_miss_analysis")
	assert.Contains(t, output, "market_impact_10q")
	assert.Contains(t, output, "2 of 7 fields present")
}

func TestRunFields_JSON(t *testing.T) {
	var out bytes.Buffer
	opts := &fieldsOptions{stdout: &out, settings: testSettings("json")}

	err := runFields(writeRecord(t, legacyRecord), opts)
	require.NoError(t, err)

	var statuses []filing.FieldStatus
	require.NoError(t, json.Unmarshal(out.Bytes(), &statuses))
	require.Len(t, statuses, 7)
	assert.Equal(t, filing.FieldStatus{Name: "beat_miss_analysis", Present: true}, statuses[0])
	assert.Equal(t, filing.FieldStatus{Name: "cost_structure", Present: false}, statuses[1])
}

func TestRunFields_UnknownForm(t *testing.T) {
	opts := &fieldsOptions{stdout: &bytes.Buffer{}, settings: testSettings("table")}

	err := runFields(writeRecord(t, `{"form_type": "DEF 14A"}`), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, filing.ErrUnknownFormType))
}

func TestRunForms(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runForms(testSettings("plain"), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "10-K\tauditor_opinion"))
	assert.True(t, strings.HasPrefix(lines[3], "S-1\tcompany_overview"))
}

func TestRunForms_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runForms(testSettings("json"), &out))

	var forms map[string][]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &forms))
	assert.Len(t, forms, 4)
	assert.Contains(t, forms["8-K"], "event_timeline")
}
