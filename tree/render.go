package tree

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/jsonview/jsonv"
)

const (
	indentWidth = 2

	iconCollapsed = "▸"
	iconExpanded  = "▾"
	iconLeaf      = "•"
)

// View renders the visible rows, padded to the model height.
func (m Model) View() string {
	lines := make([]string, 0, m.height)
	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		line := m.renderRow(m.rows[i])
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, "…")
		}
		if i == m.selected && m.focused {
			line = m.Styles.Selected.Width(max(m.width, lipgloss.Width(line))).Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one node: indent, icon, key label, kind indicator for
// containers, and the compact value for leaves.
func (m Model) renderRow(n *Node) string {
	st := m.Styles
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", n.Depth*indentWidth))

	icon := iconLeaf
	if n.IsContainer() {
		icon = iconCollapsed
		if n.Expanded {
			icon = iconExpanded
		}
	}
	sb.WriteString(st.Icon.Render(icon))
	sb.WriteByte(' ')

	if n.Labeled() {
		sb.WriteString(st.Key.Render(jsonv.Escape(n.Key) + ": "))
	}

	switch n.Value.Kind() {
	case jsonv.Array:
		sb.WriteString(st.Indicator.Render("[]"))
	case jsonv.Object:
		sb.WriteString(st.Indicator.Render("{}"))
	case jsonv.String:
		sb.WriteString(st.String.Render(`"` + jsonv.Escape(n.Value.Str()) + `"`))
	default:
		sb.WriteString(m.valueStyle(n.Value.Kind()).Render(jsonv.Compact(n.Value)))
	}
	return sb.String()
}

func (m Model) valueStyle(k jsonv.Kind) lipgloss.Style {
	switch k {
	case jsonv.String:
		return m.Styles.String
	case jsonv.Number:
		return m.Styles.Number
	case jsonv.Bool:
		return m.Styles.Bool
	case jsonv.Null:
		return m.Styles.Null
	}
	return m.Styles.Plain
}
