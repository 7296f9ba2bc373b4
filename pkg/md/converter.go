// Package md parses and paginates annotated analysis text: a small markup
// language of ### section titles, ## subheaders, --- separators and
// __bold__, *italic* and **highlight** inline spans.
package md

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlRenderer is a goldmark instance that passes raw HTML through, which
// highlight spans rely on.
var htmlRenderer = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// markdownEscaper escapes characters with inline meaning in CommonMark.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
	`~`, `\~`,
)

// ToMarkdown converts a document to CommonMark. Section titles become
// level-2 headings and subheaders level-3 headings; highlight spans are
// emitted as <mark> elements since CommonMark has no equivalent.
func ToMarkdown(doc Document) string {
	blocks := make([]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		switch b.Type {
		case BlockSectionTitle:
			blocks = append(blocks, "## "+markdownEscaper.Replace(b.Text))
		case BlockSubheader:
			blocks = append(blocks, "### "+markdownEscaper.Replace(b.Text))
		case BlockSeparator:
			blocks = append(blocks, separatorLine)
		default:
			blocks = append(blocks, segmentsToMarkdown(b.Segments))
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, paragraphSeparator) + "\n"
}

func segmentsToMarkdown(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		text := markdownEscaper.Replace(seg.Text)
		switch seg.Kind {
		case SegmentBold:
			sb.WriteString("**" + text + "**")
		case SegmentItalic:
			sb.WriteString("*" + text + "*")
		case SegmentHighlight:
			sb.WriteString("<mark>" + text + "</mark>")
		default:
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// ToHTML converts a document to an HTML fragment.
func ToHTML(doc Document) (string, error) {
	markdown := ToMarkdown(doc)
	if markdown == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
