package tree

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up, Down         key.Binding
	Home, End        key.Binding
	PageUp, PageDown key.Binding

	Toggle, Expand, Collapse key.Binding
	ExpandAll, CollapseAll   key.Binding

	Reveal key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "expand")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "collapse")),

		ExpandAll:   key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "collapse all")),

		Reveal: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "show in editor")),
	}
}
