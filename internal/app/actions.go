package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/jsonview/jsonv"
	"github.com/iw2rmb/jsonview/settings"
)

const copiedNotice = "Copied to clipboard!"

type copyResultMsg struct{ err error }

// Format replaces the document with its 2-space indented form. It does
// nothing when the document does not parse.
func (m Model) Format() Model {
	return m.rewrite("format", jsonv.Parse, func(v *jsonv.Value) string { return jsonv.Indent(v, "  ") })
}

// Minify replaces the document with its compact form. It does nothing when
// the document does not parse.
func (m Model) Minify() Model {
	return m.rewrite("minify", jsonv.Parse, jsonv.Compact)
}

// Standardize strips comments and trailing commas and pretty-prints the
// result.
func (m Model) Standardize() Model {
	return m.rewrite("standardize", jsonv.Standardize, func(v *jsonv.Value) string { return jsonv.Indent(v, "  ") })
}

func (m Model) rewrite(action string, parse func(string) (*jsonv.Value, error), render func(*jsonv.Value) string) Model {
	v, err := parse(m.editor.Text())
	if err != nil {
		m.log.Debug("action skipped", slog.String("action", action), slog.Any("err", err))
		return m
	}
	return m.setText(render(v))
}

// Clear empties the document.
func (m Model) Clear() Model { return m.setText("") }

func (m Model) setText(text string) Model {
	m.editor = m.editor.SetText(text)
	return m.sync()
}

// Copy writes the raw document to the clipboard asynchronously. Success
// shows a notice; failure is logged only.
func (m Model) Copy() (Model, tea.Cmd) {
	clip := m.cfg.Clipboard
	if clip == nil {
		m.log.Debug("action skipped", slog.String("action", "copy"), slog.String("reason", "no clipboard"))
		return m, nil
	}
	text := m.editor.Text()
	return m, func() tea.Msg {
		return copyResultMsg{err: clip.WriteText(text)}
	}
}

func (m Model) handleCopyResult(msg copyResultMsg) Model {
	if msg.err != nil {
		m.log.Warn("copy failed", slog.Any("err", msg.err))
		return m
	}
	m.notice = copiedNotice
	return m
}

// ToggleView switches between the tree and text panes.
func (m Model) ToggleView() Model {
	if m.view == ViewTree {
		m.view = ViewText
	} else {
		m.view = ViewTree
	}
	return m
}

// ToggleTheme flips the theme and saves it.
func (m Model) ToggleTheme() Model {
	m.theme = m.theme.Toggle()
	if err := settings.SaveTheme(m.store, m.theme); err != nil {
		m.log.Warn("theme not saved", slog.String("theme", m.theme.String()), slog.Any("err", err))
	}
	return m.applyTheme()
}

func (m Model) applyTheme() Model {
	m.palette = paletteFor(m.theme)
	m.syntax.styles = m.palette.syntax
	m.editor = m.editor.SetStyle(m.palette.editor)
	m.tree.Styles = m.palette.tree
	m.text.Style = m.palette.text
	m.text = m.text.SetText(m.text.Text())
	return m
}

// Query shows the JSONPath matches of expr in the text view. The next
// document change restores the full text.
func (m Model) Query(expr string) Model {
	v, err := jsonv.Parse(m.editor.Text())
	if err != nil {
		m.status = "query needs valid JSON"
		return m
	}
	res, err := jsonv.Query(v, expr)
	if err != nil {
		m.log.Debug("query failed", slog.String("expr", expr), slog.Any("err", err))
		m.status = err.Error()
		return m
	}
	m.queryShown = expr
	m.text = m.text.SetText(jsonv.Indent(res, "  ")).GotoTop()
	m.view = ViewText
	m.status = fmt.Sprintf("%d match(es) for %s", res.Len(), expr)
	return m
}

// clearQuery restores the full text view.
func (m Model) clearQuery() Model {
	if m.queryShown == "" {
		return m
	}
	m.queryShown = ""
	m.status = ""
	m.text = m.text.SetText(m.pretty)
	return m
}
