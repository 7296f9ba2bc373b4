// render.go writes a Document back out as annotated markup.
package md

import "strings"

// separatorLine is the canonical separator emitted by RenderMarkup.
const separatorLine = "---"

// RenderMarkup converts a document back to annotated text, one block per
// paragraph. For documents produced by Parse, parsing the result yields the
// same document.
func RenderMarkup(doc Document) string {
	blocks := make([]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		blocks = append(blocks, RenderBlock(b))
	}
	return strings.Join(blocks, paragraphSeparator)
}

// RenderBlock converts a single block to its annotated-text line.
func RenderBlock(b Block) string {
	switch b.Type {
	case BlockSectionTitle:
		return "### " + b.Text
	case BlockSubheader:
		return "## " + b.Text
	case BlockSeparator:
		return separatorLine
	default:
		return RenderSegments(b.Segments)
	}
}

// RenderSegments re-wraps each segment in its delimiter.
func RenderSegments(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentBold:
			sb.WriteString(boldDelim + seg.Text + boldDelim)
		case SegmentItalic:
			sb.WriteByte(italicDelim)
			sb.WriteString(seg.Text)
			sb.WriteByte(italicDelim)
		case SegmentHighlight:
			sb.WriteString(highlightDelim + seg.Text + highlightDelim)
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}
