package editor

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartGraphemeCol and EndGraphemeCol are grapheme indices in the line
	// text, half-open [StartGraphemeCol, EndGraphemeCol).
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorGraphemeCol is the grapheme index within Text if the cursor is on
	// this row; otherwise -1.
	CursorGraphemeCol int
	HasCursor         bool
}

type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) { return f(ctx) }

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	slices.SortStableFunc(out, func(a, b HighlightSpan) int {
		if c := cmp.Compare(a.StartGraphemeCol, b.StartGraphemeCol); c != 0 {
			return c
		}
		return cmp.Compare(a.EndGraphemeCol, b.EndGraphemeCol)
	})

	// Overlaps are resolved by dropping the later span.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.StartGraphemeCol < merged[n-1].EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func highlightAt(spans []HighlightSpan, col int) (lipgloss.Style, bool) {
	for _, sp := range spans {
		if col < sp.StartGraphemeCol {
			break
		}
		if col < sp.EndGraphemeCol {
			return sp.Style, true
		}
	}
	return lipgloss.Style{}, false
}
