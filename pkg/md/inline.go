// inline.go splits a paragraph into styled segments with a single-pass scanner.
package md

import "strings"

const (
	boldDelim      = "__"
	highlightDelim = "**"
	italicDelim    = '*'
)

// inlineMatcher tries to recognize a delimited span starting at pos.
// On success it returns the span content and the position just after the
// closing delimiter.
type inlineMatcher func(s string, pos int) (content string, end int, ok bool)

// inlineDelimiter pairs a segment kind with its matcher.
type inlineDelimiter struct {
	kind  SegmentKind
	match inlineMatcher
}

// inlineDelimiters is tried in order at every scan position; the first
// match wins. Bold outranks italic, which outranks highlight.
var inlineDelimiters = []inlineDelimiter{
	{kind: SegmentBold, match: matchBold},
	{kind: SegmentItalic, match: matchItalic},
	{kind: SegmentHighlight, match: matchHighlight},
}

// ParseInline splits a paragraph into an ordered list of segments that
// covers the whole input. Delimited spans never nest; scanning resumes
// after a span's closing delimiter. Unterminated delimiters stay in the
// surrounding plain text. Adjacent plain runs are merged.
func ParseInline(text string) []Segment {
	var segments []Segment
	pos := 0
	textStart := 0

	for pos < len(text) {
		if text[pos] != '_' && text[pos] != '*' {
			pos++
			continue
		}

		matched := false
		for _, d := range inlineDelimiters {
			content, end, ok := d.match(text, pos)
			if !ok {
				continue
			}
			segments = appendPlain(segments, text[textStart:pos])
			segments = append(segments, Segment{Kind: d.kind, Text: content})
			pos = end
			textStart = end
			matched = true
			break
		}
		if !matched {
			pos++
		}
	}

	return appendPlain(segments, text[textStart:])
}

// appendPlain adds a plain segment, merging with a preceding plain one.
func appendPlain(segments []Segment, text string) []Segment {
	if text == "" {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].Kind == SegmentPlain {
		segments[n-1].Text += text
		return segments
	}
	return append(segments, Segment{Kind: SegmentPlain, Text: text})
}

func matchBold(s string, pos int) (string, int, bool) {
	return matchPaired(s, pos, boldDelim)
}

// matchHighlight recognizes **text**. A span that would swallow a complete
// bold span is rejected so the bold span is found later in the scan.
func matchHighlight(s string, pos int) (string, int, bool) {
	content, end, ok := matchPaired(s, pos, highlightDelim)
	if !ok || enclosesBold(content) {
		return "", pos, false
	}
	return content, end, true
}

// matchItalic recognizes *text* where neither star touches another star,
// so it never fires on the markers of **text**.
func matchItalic(s string, pos int) (string, int, bool) {
	if s[pos] != italicDelim || isStar(s, pos-1) || isStar(s, pos+1) {
		return "", pos, false
	}
	for j := pos + 2; j < len(s); j++ {
		switch s[j] {
		case '\n':
			return "", pos, false
		case italicDelim:
			if isStar(s, j-1) || isStar(s, j+1) {
				continue
			}
			content := s[pos+1 : j]
			if enclosesBold(content) {
				return "", pos, false
			}
			return content, j + 1, true
		}
	}
	return "", pos, false
}

// matchPaired recognizes delim + at least one character + delim on a
// single line, closing at the earliest possible delimiter.
func matchPaired(s string, pos int, delim string) (string, int, bool) {
	if !strings.HasPrefix(s[pos:], delim) {
		return "", pos, false
	}
	start := pos + len(delim)
	if start >= len(s) {
		return "", pos, false
	}
	rel := strings.Index(s[start+1:], delim)
	if rel < 0 {
		return "", pos, false
	}
	closeAt := start + 1 + rel
	content := s[start:closeAt]
	if strings.ContainsRune(content, '\n') {
		return "", pos, false
	}
	return content, closeAt + len(delim), true
}

// enclosesBold reports whether s contains a complete __bold__ span.
func enclosesBold(s string) bool {
	for i := 0; i < len(s); {
		rel := strings.Index(s[i:], boldDelim)
		if rel < 0 {
			return false
		}
		if _, _, ok := matchPaired(s, i+rel, boldDelim); ok {
			return true
		}
		i += rel + 1
	}
	return false
}

func isStar(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] == italicDelim
}
