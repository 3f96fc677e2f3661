package app

import (
	"github.com/iw2rmb/jsonview/jsonv"
	"github.com/iw2rmb/jsonview/urlstate"
)

// sync runs the validate loop when the editor reported a text change.
func (m Model) sync() Model {
	if text, ok := m.changes.take(); ok {
		return m.validate(text)
	}
	return m
}

// validate parses text. On success the tree, the text view and the
// fragment are rebuilt. On failure the offending line is decorated and the
// previous views stay.
func (m Model) validate(text string) Model {
	m.editor.ClearLineClass(errorLineClass)
	m.status = ""
	if m.queryShown != "" {
		m.queryShown = ""
		m.text = m.text.SetText(m.pretty)
	}

	v, err := jsonv.Parse(text)
	if err != nil {
		line := jsonv.Locate(err, text)
		if line >= 1 {
			m.editor.AddLineClass(line-1, errorLineClass)
		}
		m.err = &ErrorState{Line: line, Message: err.Error()}
		return m
	}

	m.err = nil
	m.tree = m.tree.SetValue(v)
	m.pretty = jsonv.Indent(v, "  ")
	m.text = m.text.SetText(m.pretty)
	m.fragment = urlstate.Encode(v)
	return m
}
