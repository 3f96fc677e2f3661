// Package textview is a read-only, scrollable text pane.
package textview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/jsonview/internal/grapheme"
)

const horizontalStep = 4

type KeyMap struct {
	Left, Right key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "scroll left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "scroll right")),
	}
}

// Model shows text without wrapping. Vertical scrolling is delegated to a
// bubbles viewport; horizontal scrolling clips each line to the window.
type Model struct {
	Style  lipgloss.Style
	KeyMap KeyMap

	viewport viewport.Model
	lines    []string
	text     string
	xOffset  int
	focused  bool
}

func New() Model {
	m := Model{KeyMap: DefaultKeyMap(), viewport: viewport.New(0, 0)}
	m.viewport.MouseWheelEnabled = true
	return m
}

// SetText replaces the content. The vertical offset is kept when it still
// fits.
func (m Model) SetText(text string) Model {
	m.text = text
	m.lines = strings.Split(grapheme.VisibleText(text), "\n")
	m.xOffset = min(m.xOffset, m.maxXOffset())
	m.refresh()
	return m
}

func (m Model) Text() string { return m.text }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.xOffset = min(m.xOffset, m.maxXOffset())
	m.refresh()
	return m
}

func (m Model) Focus() Model { m.focused = true; return m }

func (m Model) Blur() Model { m.focused = false; return m }

func (m Model) Focused() bool { return m.focused }

// ScrollOffset returns the first visible line and cell.
func (m Model) ScrollOffset() (line, cell int) { return m.viewport.YOffset, m.xOffset }

func (m Model) GotoTop() Model {
	m.viewport.GotoTop()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(km, m.KeyMap.Left):
			m.scrollX(-horizontalStep)
			return m, nil
		case key.Matches(km, m.KeyMap.Right):
			m.scrollX(horizontalStep)
			return m, nil
		}
	}
	if mm, ok := msg.(tea.MouseMsg); ok && mm.Action == tea.MouseActionPress {
		switch mm.Button {
		case tea.MouseButtonWheelLeft:
			m.scrollX(-horizontalStep)
			return m, nil
		case tea.MouseButtonWheelRight:
			m.scrollX(horizontalStep)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) scrollX(delta int) {
	next := min(max(m.xOffset+delta, 0), m.maxXOffset())
	if next == m.xOffset {
		return
	}
	m.xOffset = next
	m.refresh()
}

func (m Model) maxXOffset() int {
	widest := 0
	for _, l := range m.lines {
		widest = max(widest, ansi.StringWidth(l))
	}
	return max(widest-m.viewport.Width, 0)
}

func (m *Model) refresh() {
	w := m.viewport.Width
	out := make([]string, len(m.lines))
	for i, l := range m.lines {
		if w > 0 {
			l = ansi.Cut(l, m.xOffset, m.xOffset+w)
		}
		out[i] = m.Style.Render(l)
	}
	m.viewport.SetContent(strings.Join(out, "\n"))
}
