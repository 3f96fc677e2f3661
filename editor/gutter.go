package editor

import (
	"fmt"
	"strconv"
)

// LineNumberWidth returns the line-number gutter width for lineCount: the
// digits plus one separator cell.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return LineNumberWidth(m.buf.LineCount())
}

// renderGutterCell renders the number for row. Decorated rows take the
// decoration's style over the number style.
func (m Model) renderGutterCell(row, digits int, isCursorRow bool, classes []string) string {
	numStyle := m.cfg.Style.LineNum
	if m.focused && isCursorRow {
		numStyle = m.cfg.Style.LineNumActive
	}
	numStyle, _ = m.cfg.Style.lineStyle(numStyle, classes)
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
