// classify.go assigns a structural type to a single line of annotated text.
package md

import (
	"regexp"
	"strings"
)

var (
	sectionTitlePattern = regexp.MustCompile(`^###\s+`)
	subheaderPattern    = regexp.MustCompile(`^##\s+`)
	separatorPattern    = regexp.MustCompile(`^---+$`)
)

// highlightMarker is stripped from heading content; headings never carry inline styles.
const highlightMarker = "**"

// ClassifyLine returns the structural type of line and its content.
//
// The ### check must run before ##, which is a textual prefix of it.
// Separators carry no content; paragraphs return the line unchanged so the
// inline parser sees every delimiter. Blank lines are the caller's concern.
func ClassifyLine(line string) (LineType, string) {
	if loc := sectionTitlePattern.FindStringIndex(line); loc != nil {
		return LineSectionTitle, strings.ReplaceAll(line[loc[1]:], highlightMarker, "")
	}
	if loc := subheaderPattern.FindStringIndex(line); loc != nil {
		return LineSubheader, strings.ReplaceAll(line[loc[1]:], highlightMarker, "")
	}
	if separatorPattern.MatchString(line) {
		return LineSeparator, ""
	}
	return LineParagraph, line
}

// isStructuralMarker reports whether the first line of a paragraph is a
// preferred pagination boundary: a section title or a separator.
func isStructuralMarker(paragraph string) bool {
	first, _, _ := strings.Cut(paragraph, "\n")
	first = strings.TrimSpace(first)
	return sectionTitlePattern.MatchString(first) || separatorPattern.MatchString(first)
}
