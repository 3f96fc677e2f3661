package tree

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/jsonview/jsonv"
)

// RevealMsg asks the host to show the source of a node. Offset is the
// byte offset of the node's value in the parsed text.
type RevealMsg struct {
	Offset int
	Path   string
}

// Model is a scrollable, selectable view of a node tree.
type Model struct {
	Styles Styles
	KeyMap KeyMap

	roots []*Node
	rows  []*Node

	selected int
	offset   int
	width    int
	height   int
	focused  bool
}

func New(styles Styles) Model {
	return Model{Styles: styles, KeyMap: DefaultKeyMap()}
}

// SetValue rebuilds the tree from v. Expand state and selection are reset.
func (m Model) SetValue(v *jsonv.Value) Model {
	m.roots = Build(v)
	m.selected, m.offset = 0, 0
	m.reflow(nil)
	return m
}

func (m Model) SetSize(width, height int) Model {
	m.width, m.height = max(width, 0), max(height, 0)
	m.scrollToSelected()
	return m
}

func (m Model) Focus() Model { m.focused = true; return m }

func (m Model) Blur() Model { m.focused = false; return m }

func (m Model) Focused() bool { return m.focused }

// Roots returns the top-level nodes.
func (m Model) Roots() []*Node { return m.roots }

// Rows returns the visible nodes in display order.
func (m Model) Rows() []*Node { return m.rows }

// Selected returns the selected node, if the tree is not empty.
func (m Model) Selected() (*Node, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return nil, false
	}
	return m.rows[m.selected], true
}

func (m Model) ExpandAll() Model {
	sel, _ := m.Selected()
	walk(m.roots, func(n *Node) { n.Expanded = n.IsContainer() })
	m.reflow(sel)
	return m
}

func (m Model) CollapseAll() Model {
	sel, _ := m.Selected()
	walk(m.roots, func(n *Node) { n.Expanded = false })
	m.reflow(sel)
	return m
}

// ToggleRow flips the node on visible row i.
func (m Model) ToggleRow(i int) Model {
	if i < 0 || i >= len(m.rows) {
		return m
	}
	sel, _ := m.Selected()
	m.rows[i].Toggle()
	m.reflow(sel)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.selectRow(m.selected - 1)
	case key.Matches(msg, km.Down):
		m.selectRow(m.selected + 1)
	case key.Matches(msg, km.Home):
		m.selectRow(0)
	case key.Matches(msg, km.End):
		m.selectRow(len(m.rows) - 1)
	case key.Matches(msg, km.PageUp):
		m.selectRow(m.selected - max(m.height, 1))
	case key.Matches(msg, km.PageDown):
		m.selectRow(m.selected + max(m.height, 1))
	case key.Matches(msg, km.Toggle):
		m = m.ToggleRow(m.selected)
	case key.Matches(msg, km.Expand):
		if n, ok := m.Selected(); ok && n.IsContainer() && !n.Expanded {
			m = m.ToggleRow(m.selected)
		}
	case key.Matches(msg, km.Collapse):
		n, ok := m.Selected()
		switch {
		case !ok:
		case n.IsContainer() && n.Expanded:
			m = m.ToggleRow(m.selected)
		case n.Parent != nil:
			m.selectNode(n.Parent)
		}
	case key.Matches(msg, km.ExpandAll):
		m = m.ExpandAll()
	case key.Matches(msg, km.CollapseAll):
		m = m.CollapseAll()
	case key.Matches(msg, km.Reveal):
		if n, ok := m.Selected(); ok {
			reveal := RevealMsg{Offset: n.Value.Span().Pos, Path: n.Path()}
			return m, func() tea.Msg { return reveal }
		}
	}
	return m, nil
}

// updateMouse expects coordinates relative to the tree's top-left cell.
func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
	case tea.MouseButtonLeft:
		i := m.offset + msg.Y
		if msg.Y < 0 || i < 0 || i >= len(m.rows) {
			return m
		}
		m.selected = i
		if iconCol := m.rows[i].Depth * indentWidth; msg.X == iconCol {
			m = m.ToggleRow(i)
		}
	}
	return m
}

func (m *Model) selectRow(i int) {
	if len(m.rows) == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(i, 0), len(m.rows)-1)
	m.scrollToSelected()
}

func (m *Model) selectNode(n *Node) {
	for i, r := range m.rows {
		if r == n {
			m.selectRow(i)
			return
		}
	}
}

func (m *Model) scrollBy(delta int) {
	maxOffset := max(len(m.rows)-m.height, 0)
	m.offset = min(max(m.offset+delta, 0), maxOffset)
}

func (m *Model) scrollToSelected() {
	if m.height <= 0 {
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	} else if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
	m.scrollBy(0)
}

// reflow re-flattens rows and keeps keep (or its nearest visible ancestor)
// selected.
func (m *Model) reflow(keep *Node) {
	m.rows = flatten(m.roots, m.rows[:0:0])
	for n := keep; n != nil; n = n.Parent {
		for i, r := range m.rows {
			if r == n {
				m.selectRow(i)
				return
			}
		}
	}
	m.selectRow(m.selected)
}
