package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/jsonview/editor"
	"github.com/iw2rmb/jsonview/internal/grapheme"
)

type syntaxStyles struct {
	Key, String, Number, Bool, Null, Punct lipgloss.Style
}

// syntaxHighlighter colors JSON tokens line by line. JSON strings cannot
// span lines, so no state is carried between rows. The styles are swapped
// in place on theme changes.
type syntaxHighlighter struct {
	styles syntaxStyles
}

func (h *syntaxHighlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	cl := grapheme.Split(ctx.Text)
	var spans []editor.HighlightSpan
	add := func(start, end int, st lipgloss.Style) {
		spans = append(spans, editor.HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: st})
	}

	for i := 0; i < len(cl); {
		c := cl[i]
		switch {
		case c == `"`:
			end := stringEnd(cl, i)
			st := h.styles.String
			if followedByColon(cl, end) {
				st = h.styles.Key
			}
			add(i, end, st)
			i = end
		case c == "-" || isDigit(c):
			j := i + 1
			for j < len(cl) && isNumberPart(cl[j]) {
				j++
			}
			add(i, j, h.styles.Number)
			i = j
		case isLetter(c):
			j := i + 1
			for j < len(cl) && isLetter(cl[j]) {
				j++
			}
			switch grapheme.Join(cl[i:j]) {
			case "true", "false":
				add(i, j, h.styles.Bool)
			case "null":
				add(i, j, h.styles.Null)
			}
			i = j
		case len(c) == 1 && strings.Contains("{}[],:", c):
			add(i, i+1, h.styles.Punct)
			i++
		default:
			i++
		}
	}
	return spans, nil
}

// stringEnd returns the index after the closing quote of the string opened
// at start, or the line length when it is unterminated.
func stringEnd(cl []string, start int) int {
	for j := start + 1; j < len(cl); j++ {
		switch cl[j] {
		case `\`:
			j++
		case `"`:
			return j + 1
		}
	}
	return len(cl)
}

func followedByColon(cl []string, from int) bool {
	for _, c := range cl[min(from, len(cl)):] {
		if grapheme.IsSpace(c) {
			continue
		}
		return c == ":"
	}
	return false
}

func isDigit(c string) bool { return len(c) == 1 && c[0] >= '0' && c[0] <= '9' }

func isNumberPart(c string) bool {
	return isDigit(c) || c == "." || c == "e" || c == "E" || c == "+" || c == "-"
}

func isLetter(c string) bool {
	return len(c) == 1 && (c[0] >= 'a' && c[0] <= 'z' || c[0] >= 'A' && c[0] <= 'Z')
}
