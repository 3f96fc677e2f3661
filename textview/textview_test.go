package textview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func viewLines(m Model) []string {
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestSetTextAndView(t *testing.T) {
	m := New().SetSize(20, 3).SetText("{\n  \"a\": 1\n}")
	got := viewLines(m)
	want := []string{"{", `  "a": 1`, "}"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("View: got %q, want %q", got, want)
	}
	if m.Text() != "{\n  \"a\": 1\n}" {
		t.Fatalf("Text: got %q", m.Text())
	}
}

func TestVerticalScroll(t *testing.T) {
	m := New().SetSize(10, 2).SetText("a\nb\nc\nd").Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if row, _ := m.ScrollOffset(); row != 1 {
		t.Fatalf("YOffset after down: got %d, want 1", row)
	}
	if got := viewLines(m)[0]; got != "b" {
		t.Fatalf("first line: got %q, want %q", got, "b")
	}

	// Shrinking the text keeps the offset inside the content.
	m = m.SetText("x")
	if row, _ := m.ScrollOffset(); row != 0 {
		t.Fatalf("YOffset after shrink: got %d, want 0", row)
	}
}

func TestHorizontalScroll(t *testing.T) {
	m := New().SetSize(4, 1).SetText("0123456789").Focus()
	if got := viewLines(m)[0]; got != "0123" {
		t.Fatalf("initial: got %q, want %q", got, "0123")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := viewLines(m)[0]; got != "4567" {
		t.Fatalf("after right: got %q, want %q", got, "4567")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if _, cell := m.ScrollOffset(); cell != 6 {
		t.Fatalf("xOffset clamps: got %d, want 6", cell)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if _, cell := m.ScrollOffset(); cell != 0 {
		t.Fatalf("xOffset after left: got %d, want 0", cell)
	}
}

func TestBlurredIgnoresKeys(t *testing.T) {
	m := New().SetSize(4, 1).SetText("0123456789")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if _, cell := m.ScrollOffset(); cell != 0 {
		t.Fatalf("xOffset: got %d, want 0", cell)
	}
}
