package editor

import (
	"github.com/iw2rmb/jsonview/buffer"
	graphemeutil "github.com/iw2rmb/jsonview/internal/grapheme"
)

// contentWidth is the number of cells left for text after the gutter.
func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	if w < 0 {
		return 0
	}
	return w
}

func (m Model) contentHeight() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

// ScrollOffset returns the first visible row and cell.
func (m Model) ScrollOffset() (row, cell int) { return m.viewport.YOffset, m.xOffset }

// cursorCell returns the cell column where the cursor starts on its row.
func (m Model) cursorCell() int {
	cur := m.buf.Cursor()
	line, _ := m.buf.Line(cur.Row)
	clusters := graphemeutil.Split(line)
	cell := 0
	for i := 0; i < cur.GraphemeCol && i < len(clusters); i++ {
		cell += graphemeutil.Width(clusters[i], cell, m.cfg.tabWidth())
	}
	return cell
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.contentHeight()
	if h <= 0 {
		return
	}

	cur := m.buf.Cursor()
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
	} else if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
	scrolled := m.viewport.YOffset != y

	if w := m.contentWidth(); w > 0 {
		cell := m.cursorCell()
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
			scrolled = true
		case cell >= m.xOffset+w:
			m.xOffset = cell - w + 1
			scrolled = true
		}
	}
	if scrolled {
		// Highlighting and horizontal clipping depend on the window.
		m.rebuildContent()
	}
}

func (m *Model) pageMove(down bool) {
	h := max(m.contentHeight(), 1)
	cur := m.buf.Cursor()
	row := cur.Row - h
	if down {
		row = cur.Row + h
	}
	m.buf.SetCursor(buffer.Pos{Row: row, GraphemeCol: cur.GraphemeCol})
}
