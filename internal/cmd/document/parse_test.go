package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/filing-cli/pkg/md"
)

func TestRunParse_JSON(t *testing.T) {
	input, out := newTestInput(t, sampleAnalysis, "json")
	opts := &parseOptions{inputOptions: input}

	err := runParse(opts)
	require.NoError(t, err)

	var doc md.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, md.Parse(sampleAnalysis), doc)
	require.Len(t, doc.Blocks, 5)
	assert.Equal(t, md.BlockSectionTitle, doc.Blocks[0].Type)
	assert.Equal(t, md.BlockSeparator, doc.Blocks[2].Type)
}

func TestRunParse_Table(t *testing.T) {
	input, out := newTestInput(t, sampleAnalysis, "table")
	opts := &parseOptions{inputOptions: input}

	err := runParse(opts)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "section_title")
	assert.Contains(t, output, `highlight:"42%"`)
	assert.Contains(t, output, `bold:"strong"`)
	assert.Contains(t, output, `italic:"cautious"`)
}

func TestRunParse_Page(t *testing.T) {
	text := "### First\n\n" + paragraphs(1, 80) + "\n\n### Second\n\n" + paragraphs(1, 80)
	input, out := newTestInput(t, text, "json")
	opts := &parseOptions{inputOptions: input, page: 2, chars: 100}

	err := runParse(opts)
	require.NoError(t, err)

	var doc md.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.NotEmpty(t, doc.Blocks)
	assert.Equal(t, md.Block{Type: md.BlockSectionTitle, Text: "Second"}, doc.Blocks[0])
}

func TestRunParse_PageOutOfRange(t *testing.T) {
	input, _ := newTestInput(t, sampleAnalysis, "json")
	opts := &parseOptions{inputOptions: input, page: 4}

	err := runParse(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 4 out of range (1-1)")
}

func TestDescribeBlock(t *testing.T) {
	tests := []struct {
		name  string
		block md.Block
		want  string
	}{
		{"heading", md.Block{Type: md.BlockSubheader, Text: "Outlook"}, "Outlook"},
		{"separator", md.Block{Type: md.BlockSeparator}, ""},
		{
			"paragraph",
			md.Block{Type: md.BlockParagraph, Segments: []md.Segment{
				{Kind: md.SegmentPlain, Text: "Up "},
				{Kind: md.SegmentBold, Text: "5%"},
			}},
			`plain:"Up " bold:"5%"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeBlock(tt.block))
		})
	}
}
