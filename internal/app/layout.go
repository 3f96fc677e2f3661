package app

const (
	headerHeight = 1
	// status line and help line
	footerHeight = 2
	dividerWidth = 1
	minPaneWidth = 10
)

// resizeSession exists while the pane divider is dragged. It ends on
// button release, any other press, a window resize, or focus loss.
type resizeSession struct{}

func (m Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 0)
}

// editorWidth returns the editor pane width; the divider sits right after it.
func (m Model) editorWidth() int {
	if m.split <= 0 {
		return m.clampSplit(m.width / 2)
	}
	return m.clampSplit(m.split)
}

func (m Model) viewWidth() int {
	return max(m.width-m.editorWidth()-dividerWidth, 0)
}

func (m Model) clampSplit(x int) int {
	lo, hi := minPaneWidth, m.width-minPaneWidth-dividerWidth
	if hi < lo {
		return max(m.width/2, 0)
	}
	return min(max(x, lo), hi)
}

// Resizing reports whether a divider drag is in progress.
func (m Model) Resizing() bool { return m.resize != nil }

func (m Model) endResize() Model {
	m.resize = nil
	return m
}

func (m Model) layout() Model {
	h := m.bodyHeight()
	m.editor = m.editor.SetSize(m.editorWidth(), h)
	m.tree = m.tree.SetSize(m.viewWidth(), h)
	m.text = m.text.SetSize(m.viewWidth(), h)
	m.prompt.Width = max(m.width-len(m.prompt.Prompt)-1, 0)
	m.help.Width = m.width
	return m
}
