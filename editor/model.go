package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/jsonview/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	// xOffset is the first visible content cell (no soft wrap).
	xOffset int

	deco *lineDecorations

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion  uint64
	lastTextVersion uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
		deco:     newLineDecorations(),
	}
	m.viewport.MouseWheelEnabled = true
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Text() string { return m.buf.Text() }

// Line returns the text of the 0-based row.
func (m Model) Line(row int) (string, bool) { return m.buf.Line(row) }

func (m Model) LineCount() int { return m.buf.LineCount() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetText replaces the document and reports the change through OnChange.
func (m Model) SetText(text string) Model {
	m.buf.SetText(text)
	m.syncFromBuffer()
	m.followCursor()
	return m
}

// SetCursorOffset moves the cursor to the byte offset off in the document
// text and scrolls it into view.
func (m Model) SetCursorOffset(off int) Model {
	m.buf.ClearSelection()
	m.buf.SetCursor(m.buf.PosFromByteOffset(off))
	m.syncFromBuffer()
	m.followCursor()
	return m
}

// SetStyle swaps the rendering style, e.g. on a theme change.
func (m Model) SetStyle(s Style) Model {
	m.cfg.Style = s
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.syncFromBuffer()
		// Don't force-follow cursor here; allow manual scrolling via mouse wheel.
		return m, cmd
	case tea.KeyMsg:
		m, _ = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	default:
		// Hosts may mutate the buffer directly.
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

// View renders the visible window. Decorations added by the host since the
// last Update are picked up here.
func (m Model) View() string {
	m.rebuildContent()
	return m.viewport.View()
}

func (m *Model) syncFromBuffer() (changed bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	textChanged := m.buf.TextVersion() != m.lastTextVersion
	m.lastBufVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
	if textChanged {
		m.deco.dropOutOfRange(m.buf.LineCount())
	}
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
