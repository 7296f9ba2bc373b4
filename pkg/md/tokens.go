// tokens.go defines the block and inline types of the annotated-text document model.
package md

// SegmentKind is the inline style of a Segment.
type SegmentKind string

const (
	SegmentPlain     SegmentKind = "plain"     // text outside any delimiter
	SegmentHighlight SegmentKind = "highlight" // **text**
	SegmentBold      SegmentKind = "bold"      // __text__
	SegmentItalic    SegmentKind = "italic"    // *text*
)

// Segment is one inline-styled span within a paragraph.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// LineType is the structural classification of a single line.
type LineType int

const (
	LineParagraph    LineType = iota // anything else; content goes to ParseInline
	LineSectionTitle                 // ### Title
	LineSubheader                    // ## Subheader
	LineSeparator                    // --- (three or more dashes)
)

// String returns the block type name for the line type.
func (t LineType) String() string {
	return string(t.BlockType())
}

// BlockType maps a line classification to the block it produces.
func (t LineType) BlockType() BlockType {
	switch t {
	case LineSectionTitle:
		return BlockSectionTitle
	case LineSubheader:
		return BlockSubheader
	case LineSeparator:
		return BlockSeparator
	default:
		return BlockParagraph
	}
}

// BlockType is the tag of a Block.
type BlockType string

const (
	BlockSectionTitle BlockType = "section_title"
	BlockSubheader    BlockType = "subheader"
	BlockSeparator    BlockType = "separator"
	BlockParagraph    BlockType = "paragraph"
)

// Block is one structural unit of a parsed document. Text is set for
// headings, Segments for paragraphs, and neither for separators.
type Block struct {
	Type     BlockType `json:"type"`
	Text     string    `json:"text,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

// Document is an ordered sequence of blocks.
type Document struct {
	Blocks []Block `json:"blocks"`
}
