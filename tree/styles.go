package tree

import "github.com/charmbracelet/lipgloss"

// Styles colors tree rows by value kind.
type Styles struct {
	Icon      lipgloss.Style
	Key       lipgloss.Style
	Indicator lipgloss.Style

	String lipgloss.Style
	Number lipgloss.Style
	Bool   lipgloss.Style
	// Null uses the object color.
	Null  lipgloss.Style
	Plain lipgloss.Style

	// Selected is laid over the selected row.
	Selected lipgloss.Style
}

func DefaultStyles() Styles {
	purple := lipgloss.Color("#800080")
	return Styles{
		Icon:      lipgloss.NewStyle(),
		Key:       lipgloss.NewStyle().Foreground(purple),
		Indicator: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		String:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2a00ff")),
		Number:    lipgloss.NewStyle().Foreground(lipgloss.Color("#008000")),
		Bool:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Null:      lipgloss.NewStyle().Foreground(purple),
		Plain:     lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("#e6e6e6")),
	}
}
