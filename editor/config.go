package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth is the tab stop in cells. Zero means 4.
	TabWidth int

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	Highlighter Highlighter

	// OnChange is called after every Update or SetText that changed buffer
	// state (text, cursor, or selection). It runs synchronously.
	OnChange func(ChangeEvent)
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}
