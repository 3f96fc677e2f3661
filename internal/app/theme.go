package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/jsonview/editor"
	"github.com/iw2rmb/jsonview/settings"
	"github.com/iw2rmb/jsonview/tree"
)

// errorLineClass marks the editor line a parse error points at.
const errorLineClass = "error-line"

type palette struct {
	editor editor.Style
	tree   tree.Styles
	text   lipgloss.Style
	syntax syntaxStyles

	header        lipgloss.Style
	status        lipgloss.Style
	errorText     lipgloss.Style
	divider       lipgloss.Style
	dividerActive lipgloss.Style
	notice        lipgloss.Style
}

type colors struct {
	fg, muted, key, str, num, boolean, null lipgloss.Color
	selected, errorLine, chrome             lipgloss.Color
	errorFg, accent                         lipgloss.Color
}

var (
	lightColors = colors{
		fg:        "#000000",
		muted:     "#888888",
		key:       "#800080",
		str:       "#2a00ff",
		num:       "#008000",
		boolean:   "#ff0000",
		null:      "#800080",
		selected:  "#e6e6e6",
		errorLine: "#ffd6d6",
		chrome:    "#f0f0f0",
		errorFg:   "#c00000",
		accent:    "#005fd7",
	}
	darkColors = colors{
		fg:        "#d4d4d4",
		muted:     "#808080",
		key:       "#c586c0",
		str:       "#6a9fff",
		num:       "#6bc46d",
		boolean:   "#f47067",
		null:      "#c586c0",
		selected:  "#3a3d41",
		errorLine: "#5a1d1d",
		chrome:    "#252526",
		errorFg:   "#f48771",
		accent:    "#4fc1ff",
	}
)

func paletteFor(t settings.Theme) palette {
	c := lightColors
	if t == settings.Dark {
		c = darkColors
	}
	fg := lipgloss.NewStyle().Foreground(c.fg)

	es := editor.DefaultStyle()
	es.Text = fg
	es.LineNum = lipgloss.NewStyle().Foreground(c.muted)
	es.Gutter = es.LineNum
	es.LineNumActive = lipgloss.NewStyle().Foreground(c.fg).Bold(true)
	es.Selection = lipgloss.NewStyle().Background(c.selected)
	es.LineClass = map[string]lipgloss.Style{
		errorLineClass: lipgloss.NewStyle().Background(c.errorLine),
	}

	return palette{
		editor: es,
		tree: tree.Styles{
			Icon:      fg,
			Key:       lipgloss.NewStyle().Foreground(c.key),
			Indicator: lipgloss.NewStyle().Foreground(c.muted),
			String:    lipgloss.NewStyle().Foreground(c.str),
			Number:    lipgloss.NewStyle().Foreground(c.num),
			Bool:      lipgloss.NewStyle().Foreground(c.boolean),
			Null:      lipgloss.NewStyle().Foreground(c.null),
			Plain:     fg,
			Selected:  lipgloss.NewStyle().Background(c.selected),
		},
		text: fg,
		syntax: syntaxStyles{
			Key:    lipgloss.NewStyle().Foreground(c.key),
			String: lipgloss.NewStyle().Foreground(c.str),
			Number: lipgloss.NewStyle().Foreground(c.num),
			Bool:   lipgloss.NewStyle().Foreground(c.boolean),
			Null:   lipgloss.NewStyle().Foreground(c.null),
			Punct:  lipgloss.NewStyle().Foreground(c.muted),
		},
		header:        lipgloss.NewStyle().Background(c.chrome).Foreground(c.fg).Bold(true),
		status:        lipgloss.NewStyle().Foreground(c.muted),
		errorText:     lipgloss.NewStyle().Foreground(c.errorFg),
		divider:       lipgloss.NewStyle().Foreground(c.muted),
		dividerActive: lipgloss.NewStyle().Foreground(c.accent),
		notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.accent).
			Foreground(c.fg).
			Padding(1, 3),
	}
}
