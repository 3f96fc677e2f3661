package editor

import (
	"maps"
	"slices"
)

// lineDecorations maps a 0-based row to its set of class names. It is held
// by pointer so copies of Model share it.
type lineDecorations struct {
	byRow map[int]map[string]struct{}
}

func newLineDecorations() *lineDecorations {
	return &lineDecorations{byRow: map[int]map[string]struct{}{}}
}

// AddLineClass attaches class to the 0-based row. Rows outside the document
// are ignored. Adding a class twice is a no-op.
func (m Model) AddLineClass(row int, class string) {
	if m.deco == nil || class == "" || row < 0 || row >= m.buf.LineCount() {
		return
	}
	set, ok := m.deco.byRow[row]
	if !ok {
		set = map[string]struct{}{}
		m.deco.byRow[row] = set
	}
	set[class] = struct{}{}
}

// RemoveLineClass detaches class from row.
func (m Model) RemoveLineClass(row int, class string) {
	if m.deco == nil {
		return
	}
	set, ok := m.deco.byRow[row]
	if !ok {
		return
	}
	delete(set, class)
	if len(set) == 0 {
		delete(m.deco.byRow, row)
	}
}

// ClearLineClass detaches class from every row.
func (m Model) ClearLineClass(class string) {
	if m.deco == nil {
		return
	}
	for row := range m.deco.byRow {
		m.RemoveLineClass(row, class)
	}
}

// LineClasses returns the classes on row in name order.
func (m Model) LineClasses(row int) []string {
	if m.deco == nil {
		return nil
	}
	set := m.deco.byRow[row]
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// DecoratedRows returns every row carrying class, ascending.
func (m Model) DecoratedRows(class string) []int {
	if m.deco == nil {
		return nil
	}
	var rows []int
	for row, set := range m.deco.byRow {
		if _, ok := set[class]; ok {
			rows = append(rows, row)
		}
	}
	slices.Sort(rows)
	return rows
}

// dropOutOfRange forgets decorations on rows the document no longer has.
func (d *lineDecorations) dropOutOfRange(lineCount int) {
	if d == nil {
		return
	}
	for row := range d.byRow {
		if row >= lineCount {
			delete(d.byRow, row)
		}
	}
}
