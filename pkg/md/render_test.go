package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkup(t *testing.T) {
	doc := Document{Blocks: []Block{
		{Type: BlockSectionTitle, Text: "SECTION 1"},
		{Type: BlockSubheader, Text: "Overview"},
		{Type: BlockSeparator},
		{Type: BlockParagraph, Segments: []Segment{
			{SegmentPlain, "Up "},
			{SegmentHighlight, "5%"},
			{SegmentPlain, " on "},
			{SegmentBold, "demand"},
			{SegmentPlain, ", "},
			{SegmentItalic, "barely"},
		}},
	}}

	want := "### SECTION 1\n\n## Overview\n\n---\n\nUp **5%** on __demand__, *barely*"
	assert.Equal(t, want, RenderMarkup(doc))
}

func TestRenderMarkup_RoundTrip(t *testing.T) {
	inputs := []string{
		"### SECTION 2: RISKS\n\nRevenue grew **42%** driven by __strong demand__ despite *headwinds*.",
		"## Overview\n\n---\n\nplain text only",
		"Trailing lone star*\n\nsnake__case",
	}
	for _, input := range inputs {
		doc := Parse(input)
		assert.Equal(t, doc, Parse(RenderMarkup(doc)), input)
	}
}

func TestRenderMarkup_Empty(t *testing.T) {
	assert.Equal(t, "", RenderMarkup(Document{}))
}
