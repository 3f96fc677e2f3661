package buffer

import (
	"strings"

	"github.com/iw2rmb/jsonview/internal/grapheme"
)

// InsertText inserts s at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(ChangeSourceInput, r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.replace(ChangeSourceInput, Range{
			Start: Pos{Row: row, GraphemeCol: col - 1},
			End:   b.cursor,
		}, "")
	default:
		// Join with the previous line.
		b.replace(ChangeSourceInput, Range{
			Start: Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])},
			End:   b.cursor,
		}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.replace(ChangeSourceInput, Range{
			Start: b.cursor,
			End:   Pos{Row: row, GraphemeCol: col + 1},
		}, "")
	default:
		// Join with the next line.
		b.replace(ChangeSourceInput, Range{
			Start: b.cursor,
			End:   Pos{Row: row + 1, GraphemeCol: 0},
		}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replace(ChangeSourceInput, r, "")
}

// SetText replaces the whole document. The cursor moves to the start of the
// document and the selection is cleared. Replacing the text with identical
// text is not a change.
func (b *Buffer) SetText(text string) bool {
	lastRow := len(b.lines) - 1
	whole := Range{End: Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}}
	if !b.replace(ChangeSourceProgram, whole, text) {
		return false
	}
	b.cursor = Pos{}
	b.lastChange.CursorAfter = b.cursor
	return true
}

// TextInRange returns the document text covered by r.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func (b *Buffer) replace(source ChangeSource, r Range, text string) bool {
	before := b.pending()
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}
	b.commit(source, before, nextCursor, applied)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	text = normalizeNewlines(text)
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	for i, p := range parts {
		repl[i] = grapheme.Split(p)
	}
	last := len(repl) - 1
	tailCol := len(repl[last])
	if last == 0 {
		tailCol += len(prefix)
	}
	repl[0] = append(prefix, repl[0]...)
	repl[last] = append(repl[last], suffix...)
	nextCursor = Pos{Row: startRow + last, GraphemeCol: tailCol}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+last)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	return nextCursor, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textForLinesRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
