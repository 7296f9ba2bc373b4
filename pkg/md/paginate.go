// paginate.go splits long annotated text into bounded pages at paragraph boundaries.
package md

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// shortTextRatio: text shorter than this fraction of the budget is one page.
	shortTextRatio = 0.75
	// hardCeilingRatio: accumulation past the budget stops at this fraction.
	hardCeilingRatio = 1.5
	// paragraphSeparator joins paragraphs inside a page.
	paragraphSeparator = "\n\n"
)

// blankLinePattern matches a paragraph boundary: a line break, an optional
// whitespace-only line run, and another line break.
var blankLinePattern = regexp.MustCompile(`\n[ \t\r\f\v]*(?:\n[ \t\r\f\v]*)*\n`)

// Paginate splits text into an ordered list of pages of roughly
// charsPerPage characters. It never splits inside a paragraph and always
// returns at least one page.
//
// Paragraphs are accumulated greedily. Once the budget would be exceeded,
// a section title or separator starts a new page; any other paragraph is
// still added unless the page would grow past 1.5x the budget. A single
// paragraph longer than that ceiling becomes its own oversized page.
// A section title or separator is measured together with the paragraph
// that follows it, so a heading is not left alone at the bottom of a page.
func Paginate(text string, charsPerPage int, opts ...Option) []string {
	o := buildOptions(opts)
	logger := o.logger

	if charsPerPage <= 0 {
		charsPerPage = DefaultCharsPerPage
	}
	textLen := charCount(text)
	if float64(textLen) < shortTextRatio*float64(charsPerPage) {
		logger.Debug("text below pagination threshold", "chars", textLen, "charsPerPage", charsPerPage)
		return []string{strings.TrimSpace(text)}
	}

	paragraphs := SplitParagraphs(text)
	if len(paragraphs) == 0 {
		return []string{strings.TrimSpace(text)}
	}

	ceiling := hardCeilingRatio * float64(charsPerPage)
	var pages []string
	var current strings.Builder
	currentLen := 0

	flush := func(reason string) {
		pages = append(pages, current.String())
		logger.Debug("page flushed", "page", len(pages), "chars", currentLen, "reason", reason)
		current.Reset()
		currentLen = 0
	}
	add := func(paragraph string, n int) {
		if currentLen > 0 {
			current.WriteString(paragraphSeparator)
			currentLen += len(paragraphSeparator)
		}
		current.WriteString(paragraph)
		currentLen += n
	}

	for i, paragraph := range paragraphs {
		n := charCount(paragraph)
		projected := currentLen + n
		if currentLen > 0 {
			projected += len(paragraphSeparator)
		}

		marker := isStructuralMarker(paragraph)
		fit := projected
		if marker && i+1 < len(paragraphs) {
			fit += len(paragraphSeparator) + charCount(paragraphs[i+1])
		}

		switch {
		case currentLen == 0, fit <= charsPerPage:
			add(paragraph, n)
		case marker:
			flush("structural marker")
			add(paragraph, n)
		case float64(projected) > ceiling:
			flush("hard ceiling")
			add(paragraph, n)
		default:
			add(paragraph, n)
		}
	}
	if currentLen > 0 {
		flush("end of text")
	}

	logger.Debug("pagination complete", "pages", len(pages), "paragraphs", len(paragraphs))
	return pages
}

// SplitParagraphs splits text on blank lines and returns the trimmed,
// non-empty paragraphs in order.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paragraphs []string
	for _, p := range blankLinePattern.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
