package md

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Highlight markers survive the HTML to markdown conversion as plain words
// and are turned into ** once the markdown has been walked.
const (
	markOpenPlaceholder  = "FILMARKOPEN"
	markClosePlaceholder = "FILMARKCLOSE"
)

var (
	markOpenPattern  = regexp.MustCompile(`(?i)<mark(\s[^>]*)?>`)
	markClosePattern = regexp.MustCompile(`(?i)</mark\s*>`)
)

// markdownParser parses the intermediate markdown produced from HTML.
var markdownParser = goldmark.New()

// FromHTML converts an HTML analysis into annotated text. h1 and h2 become
// section titles, deeper headings subheaders, <hr> a separator, <strong>
// bold, <em> italic and <mark> highlight. List items become "- " paragraphs.
func FromHTML(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	html = markOpenPattern.ReplaceAllString(html, markOpenPlaceholder)
	html = markClosePattern.ReplaceAllString(html, markClosePlaceholder)

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	source := []byte(markdown)
	root := markdownParser.Parser().Parse(text.NewReader(source))

	c := &annotatedConverter{source: source}
	c.convertChildren(root)

	out := strings.Join(c.blocks, paragraphSeparator)
	out = strings.ReplaceAll(out, markOpenPlaceholder, highlightDelim)
	out = strings.ReplaceAll(out, markClosePlaceholder, highlightDelim)
	return out, nil
}

// annotatedConverter collects one annotated-text block per markdown block.
type annotatedConverter struct {
	source []byte
	blocks []string
}

func (c *annotatedConverter) add(block string) {
	if block = strings.TrimSpace(block); block != "" {
		c.blocks = append(c.blocks, block)
	}
}

func (c *annotatedConverter) convertChildren(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.convertNode(child)
	}
}

func (c *annotatedConverter) convertNode(n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		title := strings.ReplaceAll(c.inlineText(node, false), highlightDelim, "")
		if node.Level <= 2 {
			c.add("### " + title)
		} else {
			c.add("## " + title)
		}
	case *ast.Paragraph, *ast.TextBlock:
		c.add(c.inlineText(node, true))
	case *ast.ThematicBreak:
		c.add(separatorLine)
	case *ast.ListItem:
		c.convertListItem(node)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		c.add(c.codeText(node))
	default:
		// Lists, blockquotes and anything unknown contribute their children.
		c.convertChildren(n)
	}
}

func (c *annotatedConverter) convertListItem(n *ast.ListItem) {
	var parts []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch ch := child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			parts = append(parts, c.inlineText(ch, true))
		default:
			if len(parts) > 0 {
				c.add("- " + strings.Join(parts, " "))
				parts = nil
			}
			c.convertNode(child)
		}
	}
	if len(parts) > 0 {
		c.add("- " + strings.Join(parts, " "))
	}
}

func (c *annotatedConverter) codeText(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(c.source))
	}
	// Blank lines inside code would split the block into paragraphs.
	return blankLinePattern.ReplaceAllString(strings.TrimSpace(sb.String()), "\n")
}

// inlineText flattens inline children into one line. With styled set,
// emphasis is converted to annotated delimiters.
func (c *annotatedConverter) inlineText(n ast.Node, styled bool) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.writeInline(&sb, child, styled)
	}
	return sb.String()
}

func (c *annotatedConverter) writeInline(sb *strings.Builder, n ast.Node, styled bool) {
	switch node := n.(type) {
	case *ast.Text:
		sb.Write(unescape(node.Segment.Value(c.source)))
		if node.SoftLineBreak() || node.HardLineBreak() {
			sb.WriteByte(' ')
		}
	case *ast.String:
		sb.Write(node.Value)
	case *ast.Emphasis:
		delim := string(italicDelim)
		if node.Level == 2 {
			delim = boldDelim
		}
		if styled {
			sb.WriteString(delim)
		}
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			c.writeInline(sb, child, false)
		}
		if styled {
			sb.WriteString(delim)
		}
	case *ast.AutoLink:
		sb.Write(node.URL(c.source))
	case *ast.RawHTML:
		// Tags that html-to-markdown kept verbatim carry no text.
	default:
		// Links, images and code spans contribute their text.
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			c.writeInline(sb, child, styled)
		}
	}
}

func unescape(b []byte) []byte {
	return util.ResolveNumericReferences(util.ResolveEntityNames(util.UnescapePunctuations(b)))
}
