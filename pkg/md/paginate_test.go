package md

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paragraphOf returns a paragraph of exactly n characters.
func paragraphOf(n int, fill string) string {
	return strings.Repeat(fill, n)
}

func TestPaginate_ShortText(t *testing.T) {
	pages := Paginate("short note", 2000)
	assert.Equal(t, []string{"short note"}, pages)
}

func TestPaginate_ShortTextIsTrimmed(t *testing.T) {
	pages := Paginate("\n\n  first\n\n\n\nsecond  \n", 2000)
	assert.Equal(t, []string{"first\n\n\n\nsecond"}, pages)
}

func TestPaginate_EmptyText(t *testing.T) {
	assert.Equal(t, []string{""}, Paginate("", 2000))
	assert.Equal(t, []string{""}, Paginate("   \n\n  ", 2000))
}

func TestPaginate_WhitespaceOnlyLongText(t *testing.T) {
	text := strings.Repeat(" \n\n ", 100)
	assert.Equal(t, []string{""}, Paginate(text, 10))
}

func TestPaginate_SoftOverflowTolerated(t *testing.T) {
	a := paragraphOf(1200, "a")
	b := paragraphOf(1200, "b")

	pages := Paginate(a+"\n\n"+b, 2000)

	require.Len(t, pages, 1)
	assert.Equal(t, a+"\n\n"+b, pages[0])
	assert.Equal(t, 2402, len(pages[0]))
}

func TestPaginate_SplitsBeforeSectionTitle(t *testing.T) {
	a := paragraphOf(1900, "a")
	b := paragraphOf(500, "b")
	text := a + "\n\n### SECTION 2: RISKS\n\n" + b

	pages := Paginate(text, 2000)

	require.Len(t, pages, 2)
	assert.Equal(t, a, pages[0])
	assert.True(t, strings.HasPrefix(pages[1], "### SECTION 2: RISKS"))
	assert.Equal(t, "### SECTION 2: RISKS\n\n"+b, pages[1])
}

func TestPaginate_SplitsBeforeSeparator(t *testing.T) {
	a := paragraphOf(1990, "a")
	b := paragraphOf(100, "b")

	pages := Paginate(a+"\n\n-----\n\n"+b, 2000)

	require.Len(t, pages, 2)
	assert.Equal(t, a, pages[0])
	assert.Equal(t, "-----\n\n"+b, pages[1])
}

func TestPaginate_SectionTitleUnderBudgetStays(t *testing.T) {
	a := paragraphOf(1000, "a")
	b := paragraphOf(500, "b")
	text := a + "\n\n### Next\n\n" + b

	pages := Paginate(text, 2000)

	require.Len(t, pages, 1)
	assert.Equal(t, text, pages[0])
}

func TestPaginate_HardCeilingForcesSplit(t *testing.T) {
	a := paragraphOf(1800, "a")
	b := paragraphOf(1500, "b")

	pages := Paginate(a+"\n\n"+b, 2000)

	assert.Equal(t, []string{a, b}, pages)
}

func TestPaginate_ProjectedAtCeilingAccumulates(t *testing.T) {
	a := paragraphOf(1500, "a")
	b := paragraphOf(1498, "b") // 1500 + 2 + 1498 = 3000

	pages := Paginate(a+"\n\n"+b, 2000)

	require.Len(t, pages, 1)
	assert.Equal(t, 3000, len(pages[0]))
}

func TestPaginate_OversizedParagraphIsOwnPage(t *testing.T) {
	small := paragraphOf(100, "s")
	huge := paragraphOf(5000, "h")

	pages := Paginate(small+"\n\n"+huge+"\n\n"+small, 2000)

	assert.Equal(t, []string{small, huge, small}, pages)
}

func TestPaginate_NormalizesParagraphSeparators(t *testing.T) {
	a := paragraphOf(900, "a")
	b := paragraphOf(900, "b")

	pages := Paginate("  "+a+"\n \n\t\n"+b+"  \n", 2000)

	assert.Equal(t, []string{a + "\n\n" + b}, pages)
}

func TestPaginate_KeepsSingleLineBreaks(t *testing.T) {
	a := paragraphOf(800, "a") + "\n" + paragraphOf(800, "c")

	pages := Paginate(a, 2000)

	assert.Equal(t, []string{a}, pages)
}

func TestPaginate_CountsCharactersNotBytes(t *testing.T) {
	// 700 three-byte runes: 2100 bytes but below the 0.75 threshold in characters.
	text := strings.Repeat("营", 700)
	assert.Equal(t, []string{text}, Paginate(text, 1000))
}

func TestPaginate_NonPositiveBudgetUsesDefault(t *testing.T) {
	assert.Equal(t, []string{"tiny"}, Paginate("tiny", 0))
	assert.Equal(t, []string{"tiny"}, Paginate("tiny", -5))
}

func TestPaginate_LogsToInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a := paragraphOf(1800, "a")
	b := paragraphOf(1500, "b")
	Paginate(a+"\n\n"+b, 2000, WithLogger(logger))

	assert.Contains(t, buf.String(), "page flushed")
	assert.Contains(t, buf.String(), "hard ceiling")
}

func TestPaginate_NilLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Paginate(paragraphOf(3000, "x"), 2000, WithLogger(nil))
	})
}

// randomAnalysis builds a deterministic pseudo-random analysis text.
func randomAnalysis(r *rand.Rand) string {
	var parts []string
	n := 1 + r.Intn(30)
	for i := 0; i < n; i++ {
		switch r.Intn(6) {
		case 0:
			parts = append(parts, fmt.Sprintf("### SECTION %d", i))
		case 1:
			parts = append(parts, strings.Repeat("-", 3+r.Intn(3)))
		case 2:
			parts = append(parts, "  \t ")
		default:
			parts = append(parts, paragraphOf(1+r.Intn(2500), string(rune('a'+r.Intn(26)))))
		}
	}
	seps := []string{"\n\n", "\n\n\n", "\n  \n", "\r\n\r\n"}
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(seps[r.Intn(len(seps))])
		}
		sb.WriteString(p)
	}
	return sb.String()
}

func TestPaginate_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	budgets := []int{100, 500, 2000}

	for i := 0; i < 200; i++ {
		text := randomAnalysis(r)
		budget := budgets[r.Intn(len(budgets))]

		pages := Paginate(text, budget)
		require.NotEmpty(t, pages)

		// Lossless partition.
		assert.Equal(t, SplitParagraphs(text), SplitParagraphs(strings.Join(pages, "\n\n")))

		if float64(charCount(text)) < 0.75*float64(budget) {
			require.Len(t, pages, 1)
			assert.Equal(t, strings.TrimSpace(text), pages[0])
			continue
		}

		for _, page := range pages {
			if float64(charCount(page)) <= 1.5*float64(budget) {
				continue
			}
			assert.Len(t, SplitParagraphs(page), 1, "only a single oversized paragraph may exceed the ceiling")
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "one", []string{"one"}},
		{"blank line", "one\n\ntwo", []string{"one", "two"}},
		{"many blank lines", "one\n\n\n\ntwo", []string{"one", "two"}},
		{"whitespace line", "one\n \t \ntwo", []string{"one", "two"}},
		{"crlf", "one\r\n\r\ntwo", []string{"one", "two"}},
		{"single newline kept", "one\ntwo", []string{"one\ntwo"}},
		{"trims", "  one  \n\n  two  ", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitParagraphs(tt.input))
		})
	}
}
