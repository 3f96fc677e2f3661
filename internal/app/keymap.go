package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-level bindings. Keys not bound here go to
// the focused pane.
type KeyMap struct {
	Format, Minify, Clear, Copy key.Binding
	Standardize                 key.Binding
	ToggleView, ToggleTheme     key.Binding
	Query                       key.Binding

	SwitchPane key.Binding
	Dismiss    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Format:      key.NewBinding(key.WithKeys("f2", "alt+f"), key.WithHelp("f2", "format")),
		Minify:      key.NewBinding(key.WithKeys("f3", "alt+m"), key.WithHelp("f3", "minify")),
		Clear:       key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "clear")),
		Copy:        key.NewBinding(key.WithKeys("f5", "alt+c"), key.WithHelp("f5", "copy")),
		ToggleView:  key.NewBinding(key.WithKeys("f6", "alt+v"), key.WithHelp("f6", "tree/text")),
		ToggleTheme: key.NewBinding(key.WithKeys("f7", "alt+t"), key.WithHelp("f7", "theme")),
		Standardize: key.NewBinding(key.WithKeys("f8", "alt+s"), key.WithHelp("f8", "strip comments")),
		Query:       key.NewBinding(key.WithKeys("f9"), key.WithHelp("f9", "jsonpath")),

		SwitchPane: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "switch pane")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Quit.Keys()) == 0 && len(km.Format.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Format, km.Minify, km.Copy, km.ToggleView, km.SwitchPane, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Format, km.Minify, km.Standardize, km.Clear},
		{km.Copy, km.Query, km.Dismiss},
		{km.ToggleView, km.ToggleTheme, km.SwitchPane},
		{km.Help, km.Quit},
	}
}
