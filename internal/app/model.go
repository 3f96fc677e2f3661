// Package app wires the editor, the tree and text views, and the share
// fragment into one Bubble Tea program.
//
// Every document change reported by the editor re-runs the validate loop:
// parse the text, then either rebuild both views and the fragment, or mark
// the offending line and show the parser's message while the views keep
// their last valid content.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/jsonview/editor"
	"github.com/iw2rmb/jsonview/jsonv"
	"github.com/iw2rmb/jsonview/settings"
	"github.com/iw2rmb/jsonview/textview"
	"github.com/iw2rmb/jsonview/tree"
	"github.com/iw2rmb/jsonview/urlstate"
)

// ViewMode selects the pane shown beside the editor.
type ViewMode uint8

const (
	ViewTree ViewMode = iota
	ViewText
)

func (v ViewMode) String() string {
	if v == ViewText {
		return "text"
	}
	return "tree"
}

// ErrorState is the active parse error. Line is 1-based, or 0 when the
// parser reported no position.
type ErrorState struct {
	Line    int
	Message string
}

type pane uint8

const (
	paneEditor pane = iota
	paneView
)

// changeQueue receives editor change events. It is shared by every copy of
// the Model; Update drains it after handing a message to the editor.
type changeQueue struct {
	pending bool
	text    string
}

func (q *changeQueue) handleChange(ev editor.ChangeEvent) {
	if !ev.TextChanged {
		return
	}
	q.pending = true
	q.text = ev.Text
}

func (q *changeQueue) take() (string, bool) {
	if !q.pending {
		return "", false
	}
	q.pending = false
	return q.text, true
}

type Model struct {
	cfg   Config
	log   *slog.Logger
	store settings.Store
	keys  KeyMap
	help  help.Model

	editor editor.Model
	tree   tree.Model
	text   textview.Model
	prompt textinput.Model

	changes *changeQueue
	syntax  *syntaxHighlighter

	view    ViewMode
	theme   settings.Theme
	palette palette
	focus   pane

	err      *ErrorState
	fragment string
	// pretty is the indented form of the last valid document.
	pretty string

	status string
	// notice is a blocking acknowledgement; the next key dismisses it.
	notice string

	querying   bool
	queryShown string

	width, height int
	split         int
	resize        *resizeSession
	mouseOwner    pane
	mouseHeld     bool
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	store := cfg.Store
	if store == nil {
		store = settings.NewMemStore()
	}

	m := Model{
		cfg:     cfg,
		log:     log,
		store:   store,
		keys:    cfg.KeyMap,
		help:    help.New(),
		tree:    tree.New(tree.DefaultStyles()),
		text:    textview.New(),
		prompt:  textinput.New(),
		changes: &changeQueue{},
		syntax:  &syntaxHighlighter{},
	}
	m.prompt.Prompt = "$ "
	m.prompt.Placeholder = "JSONPath, e.g. $.items[*].id"

	m.theme = m.loadTheme()
	m.palette = paletteFor(m.theme)
	m.syntax.styles = m.palette.syntax

	text := cfg.Text
	if frag := urlstate.FragmentOf(cfg.Fragment); frag != "" {
		v, err := urlstate.Decode(frag)
		if err != nil {
			log.Debug("fragment ignored", slog.Any("err", err))
		} else {
			text = jsonv.Indent(v, "  ")
		}
	}

	m.editor = editor.New(editor.Config{
		Text:         text,
		ShowLineNums: true,
		Style:        m.palette.editor,
		Clipboard:    cfg.Clipboard,
		Highlighter:  m.syntax,
		OnChange:     m.changes.handleChange,
	})
	m.tree.Styles = m.palette.tree
	m.text.Style = m.palette.text
	m = m.setFocus(paneEditor)

	if text != "" {
		m = m.validate(text)
	}
	return m
}

func (m Model) loadTheme() settings.Theme {
	if m.cfg.Theme != nil {
		return *m.cfg.Theme
	}
	t, err := settings.LoadTheme(m.store)
	if err != nil {
		m.log.Warn("theme not loaded", slog.Any("err", err))
	}
	return t
}

// Text returns the current document.
func (m Model) Text() string { return m.editor.Text() }

// Error returns the active parse error.
func (m Model) Error() (ErrorState, bool) {
	if m.err == nil {
		return ErrorState{}, false
	}
	return *m.err, true
}

func (m Model) ViewMode() ViewMode { return m.view }

func (m Model) Theme() settings.Theme { return m.theme }

// Fragment returns the share fragment of the last valid document, without
// the leading '#'.
func (m Model) Fragment() string { return m.fragment }

// Link returns the share link for the last valid document, or "" when no
// document has parsed yet.
func (m Model) Link() string {
	if m.fragment == "" {
		return ""
	}
	return urlstate.Link(m.cfg.BaseURL, m.fragment)
}

func (m Model) Editor() editor.Model { return m.editor }

func (m Model) Tree() tree.Model { return m.tree }

func (m Model) TextView() textview.Model { return m.text }

// Status returns the transient status message.
func (m Model) Status() string { return m.status }

// Notice returns the blocking acknowledgement, if one is shown.
func (m Model) Notice() string { return m.notice }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) setFocus(p pane) Model {
	m.focus = p
	if p == paneEditor {
		m.editor = m.editor.Focus()
		m.tree = m.tree.Blur()
		m.text = m.text.Blur()
		return m
	}
	m.editor = m.editor.Blur()
	m.tree = m.tree.Focus()
	m.text = m.text.Focus()
	return m
}
