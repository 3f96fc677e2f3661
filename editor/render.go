package editor

import (
	"math"
	"strings"

	"github.com/iw2rmb/jsonview/buffer"
	graphemeutil "github.com/iw2rmb/jsonview/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	count := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := gutterDigits(count)

	left := max(m.xOffset, 0)
	right := math.MaxInt
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	// Highlighters only run for rows inside the viewport.
	hlStart := clampInt(m.viewport.YOffset, 0, count)
	hlEnd := min(hlStart+m.contentHeight(), count)

	out := make([]string, 0, count)
	for row := 0; row < count; row++ {
		line, _ := m.buf.Line(row)
		classes := m.LineClasses(row)

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutterCell(row, digits, row == cursor.Row, classes))
		}
		var spans []HighlightSpan
		if m.cfg.Highlighter != nil && row >= hlStart && row < hlEnd {
			spans = m.highlightForLine(row, line, cursor)
		}
		sb.WriteString(m.renderLine(line, row, cursor, sel, selOK, spans, classes, left, right))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func (m Model) highlightForLine(row int, line string, cursor buffer.Pos) []HighlightSpan {
	n := graphemeutil.Count(line)
	ctx := LineContext{Row: row, Text: line, CursorGraphemeCol: -1}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorGraphemeCol = clampInt(cursor.GraphemeCol, 0, n)
	}
	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, n)
}

// renderLine renders the cells [left, right) of one document line. Cursor
// wins over selection, selection over highlights, highlights over the line
// decoration style.
func (m Model) renderLine(
	line string,
	row int,
	cursor buffer.Pos,
	sel buffer.Range,
	selOK bool,
	spans []HighlightSpan,
	classes []string,
	left, right int,
) string {
	st := m.cfg.Style
	base, decorated := st.lineStyle(st.Text, classes)
	clusters := graphemeutil.Split(line)

	cursorCol := -1
	if m.focused && row == cursor.Row {
		cursorCol = clampInt(cursor.GraphemeCol, 0, len(clusters))
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(clusters))

	var sb strings.Builder
	cell := 0
	for i, c := range clusters {
		w := graphemeutil.Width(c, cell, m.cfg.tabWidth())
		segL, segR := cell, cell+w
		cell = segR

		spanL, spanR := max(segL, left), min(segR, right)
		if spanL >= spanR {
			continue
		}

		style := base
		switch {
		case i == cursorCol:
			style = st.Cursor
		case hasSel && i >= selStart && i < selEnd:
			style = st.Selection
		default:
			if hs, ok := highlightAt(spans, i); ok {
				style = hs.Inherit(base)
			}
		}

		text := graphemeutil.Visible(c)
		if c == "\t" || spanL != segL || spanR != segR {
			// Tabs and partially visible wide clusters render as blanks.
			text = strings.Repeat(" ", spanR-spanL)
		}
		sb.WriteString(style.Render(text))
	}

	used := max(min(cell, right)-left, 0)
	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == len(clusters) && cell >= left && cell < right {
		sb.WriteString(st.Cursor.Render(" "))
		used++
	}
	if decorated && right != math.MaxInt && used < right-left {
		sb.WriteString(base.Render(strings.Repeat(" ", right-left-used)))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.GraphemeCol, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.GraphemeCol, 0, lineLen)
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}
