package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.notice != "" {
		box := m.palette.notice.Render(m.notice + "\n\n" + m.palette.status.Render("press any key"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	parts := []string{m.headerView()}
	if h := m.bodyHeight(); h > 0 {
		parts = append(parts, m.bodyView(h))
	}
	parts = append(parts, m.statusView(), m.help.View(m.keys))
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.NewStyle().MaxHeight(m.height).Render(out)
}

func (m Model) headerView() string {
	right := fmt.Sprintf("%s view · %s", m.view, m.theme)
	left := " jsonview"
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	line := left + strings.Repeat(" ", gap) + right + " "
	return m.palette.header.Width(m.width).Render(ansi.Truncate(line, m.width, ""))
}

func (m Model) bodyView(h int) string {
	ew, vw := m.editorWidth(), m.viewWidth()

	dividerStyle := m.palette.divider
	if m.resize != nil {
		dividerStyle = m.palette.dividerActive
	}
	divider := dividerStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))

	var right string
	if m.view == ViewTree {
		right = m.tree.View()
	} else {
		right = m.text.View()
	}
	box := lipgloss.NewStyle().Height(h).MaxHeight(h)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box.Width(ew).MaxWidth(ew).Render(m.editor.View()),
		divider,
		box.Width(vw).MaxWidth(vw).Render(right),
	)
}

func (m Model) statusView() string {
	var line string
	switch {
	case m.querying:
		line = m.prompt.View()
	case m.err != nil:
		msg := m.err.Message
		if m.err.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", m.err.Line, msg)
		}
		line = m.palette.errorText.Render(msg)
	case m.status != "":
		line = m.palette.status.Render(m.status)
	default:
		line = m.palette.status.Render(m.selectionInfo())
	}
	return ansi.Truncate(line, m.width, "…")
}

func (m Model) selectionInfo() string {
	if m.view == ViewTree && m.focus == paneView {
		if n, ok := m.tree.Selected(); ok {
			return n.Path()
		}
	}
	if m.fragment == "" {
		return ""
	}
	return "valid JSON"
}
