package buffer

import "github.com/iw2rmb/jsonview/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (doc start for MoveDoc)
	DirEnd  // line end (doc end for MoveDoc)
)

// Move describes one cursor motion. Extend keeps the selection anchor and
// moves its end; otherwise the selection is cleared.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	prevCursor, prevSel := b.cursor, b.sel
	next := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch m.Unit {
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
		}
		return p
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return Pos{Row: row, GraphemeCol: prevWordBoundary(b.lines[row], col)}
		case DirRight:
			return Pos{Row: row, GraphemeCol: nextWordBoundary(b.lines[row], col)}
		}
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			if col > 0 {
				return Pos{Row: row, GraphemeCol: col - 1}
			}
			if row > 0 {
				return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
			}
			return p
		case DirRight:
			if col < len(b.lines[row]) {
				return Pos{Row: row, GraphemeCol: col + 1}
			}
			if row < lastRow {
				return Pos{Row: row + 1}
			}
			return p
		}
	}

	// Shared line-wise motions.
	switch m.Dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, GraphemeCol: len(b.lines[row])}
	case DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: min(col, len(b.lines[row-1]))}
	case DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, GraphemeCol: min(col, len(b.lines[row+1]))}
	}
	return p
}

// Word boundaries skip whitespace, then non-whitespace, within one line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
