package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// LineClass styles whole lines carrying a decoration class (see
	// Model.AddLineClass). Classes without an entry render unstyled.
	LineClass map[string]lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		LineClass:     map[string]lipgloss.Style{},
	}
}

// lineStyle folds the styles of every class on a line over base, in class
// name order.
func (s Style) lineStyle(base lipgloss.Style, classes []string) (lipgloss.Style, bool) {
	styled := false
	for _, c := range classes {
		cs, ok := s.LineClass[c]
		if !ok {
			continue
		}
		base = cs.Inherit(base)
		styled = true
	}
	return base, styled
}
