// parser.go turns annotated text into a Document and composes it with pagination.
package md

import "strings"

// Parse classifies every non-blank line of text and returns the resulting
// document. Paragraph lines are decomposed into inline segments. Parse
// accepts any string; unrecognized markup is kept as plain text.
func Parse(text string, opts ...Option) Document {
	o := buildOptions(opts)

	doc := Document{Blocks: []Block{}}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineType, content := ClassifyLine(line)
		switch lineType {
		case LineSectionTitle, LineSubheader:
			doc.Blocks = append(doc.Blocks, Block{Type: lineType.BlockType(), Text: content})
		case LineSeparator:
			doc.Blocks = append(doc.Blocks, Block{Type: BlockSeparator})
		default:
			doc.Blocks = append(doc.Blocks, Block{Type: BlockParagraph, Segments: ParseInline(content)})
		}
	}

	o.logger.Debug("document parsed", "blocks", len(doc.Blocks))
	return doc
}

// Page is one paginated slice of the source text together with its parsed document.
type Page struct {
	Number   int      `json:"number"`
	Text     string   `json:"text"`
	Document Document `json:"document"`
}

// Layout paginates text and parses each page. Page numbers start at 1.
func Layout(text string, charsPerPage int, opts ...Option) []Page {
	texts := Paginate(text, charsPerPage, opts...)
	pages := make([]Page, 0, len(texts))
	for i, t := range texts {
		pages = append(pages, Page{
			Number:   i + 1,
			Text:     t,
			Document: Parse(t, opts...),
		})
	}
	return pages
}

// PlainText returns the block content with all markup removed.
func (b Block) PlainText() string {
	if b.Type != BlockParagraph {
		return b.Text
	}
	var sb strings.Builder
	for _, seg := range b.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// PlainText returns the document content without markup, one block per line.
// Separators are omitted.
func (d Document) PlainText() string {
	var lines []string
	for _, b := range d.Blocks {
		if b.Type == BlockSeparator {
			continue
		}
		lines = append(lines, b.PlainText())
	}
	return strings.Join(lines, "\n")
}
