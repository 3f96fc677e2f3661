package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/jsonview/tree"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.endResize().layout(), nil
	case tea.BlurMsg:
		return m.endResize(), nil
	case copyResultMsg:
		return m.handleCopyResult(msg), nil
	case tree.RevealMsg:
		if m.err != nil {
			// Spans refer to the last valid text.
			m.status = "reveal needs valid JSON"
			return m, nil
		}
		m = m.setFocus(paneEditor)
		m.editor = m.editor.SetCursorOffset(msg.Offset)
		return m.sync(), nil
	case tea.KeyMsg:
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		if m.notice != "" {
			return m, nil
		}
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m.sync(), cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.querying {
		return m.updatePrompt(msg)
	}

	km := m.keys
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Format):
		return m.Format(), nil
	case key.Matches(msg, km.Minify):
		return m.Minify(), nil
	case key.Matches(msg, km.Standardize):
		return m.Standardize(), nil
	case key.Matches(msg, km.Clear):
		return m.Clear(), nil
	case key.Matches(msg, km.Copy):
		return m.Copy()
	case key.Matches(msg, km.ToggleView):
		return m.ToggleView(), nil
	case key.Matches(msg, km.ToggleTheme):
		return m.ToggleTheme(), nil
	case key.Matches(msg, km.Query):
		m.querying = true
		m.prompt.SetValue(m.queryShown)
		cmd := m.prompt.Focus()
		return m, cmd
	case key.Matches(msg, km.SwitchPane):
		if m.focus == paneEditor {
			return m.setFocus(paneView), nil
		}
		return m.setFocus(paneEditor), nil
	case key.Matches(msg, km.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.layout(), nil
	case key.Matches(msg, km.Dismiss):
		return m.clearQuery(), nil
	}

	var cmd tea.Cmd
	if m.focus == paneEditor {
		m.editor, cmd = m.editor.Update(msg)
		return m.sync(), cmd
	}
	if m.view == ViewTree {
		m.tree, cmd = m.tree.Update(msg)
	} else {
		m.text, cmd = m.text.Update(msg)
	}
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.querying = false
		m.prompt.Blur()
		return m.Query(m.prompt.Value()), nil
	case tea.KeyEsc:
		m.querying = false
		m.prompt.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// updateMouse routes mouse events by screen region. Motion and release go
// to the pane that received the press so drags may leave it.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.resize != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.split = m.clampSplit(msg.X)
			return m.layout(), nil
		case tea.MouseActionRelease:
			return m.endResize(), nil
		default:
			m = m.endResize()
		}
	}

	ew := m.editorWidth()
	local := msg
	local.Y -= headerHeight
	inBody := local.Y >= 0 && local.Y < m.bodyHeight()

	if msg.Action != tea.MouseActionPress {
		if !m.mouseHeld {
			return m, nil
		}
		if msg.Action == tea.MouseActionRelease {
			m.mouseHeld = false
		}
		return m.forwardMouse(m.mouseOwner, local, ew)
	}

	if !inBody {
		return m, nil
	}
	target := paneEditor
	switch {
	case msg.X == ew:
		if msg.Button == tea.MouseButtonLeft {
			m.resize = &resizeSession{}
		}
		return m, nil
	case msg.X > ew:
		target = paneView
	}

	if msg.Button == tea.MouseButtonLeft {
		m = m.setFocus(target)
		m.mouseOwner = target
		m.mouseHeld = true
	}
	return m.forwardMouse(target, local, ew)
}

func (m Model) forwardMouse(p pane, msg tea.MouseMsg, ew int) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if p == paneEditor {
		m.editor, cmd = m.editor.Update(msg)
		return m.sync(), cmd
	}
	msg.X -= ew + dividerWidth
	if m.view == ViewTree {
		m.tree, cmd = m.tree.Update(msg)
	} else {
		m.text, cmd = m.text.Update(msg)
	}
	return m, cmd
}
