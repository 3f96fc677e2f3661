package tree_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/jsonview/tree"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tree.Model, keys ...string) tree.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func viewLines(m tree.Model) []string {
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func newModel(t *testing.T, text string, w, h int) tree.Model {
	t.Helper()
	m := tree.New(tree.DefaultStyles()).SetValue(mustParse(t, text)).SetSize(w, h)
	return m.Focus()
}

func selectedKey(t *testing.T, m tree.Model) string {
	t.Helper()
	n, ok := m.Selected()
	if !ok {
		t.Fatal("no selection")
	}
	return n.Path()
}

func TestViewCollapsed(t *testing.T) {
	m := newModel(t, `{"a":1,"b":[1,2]}`, 30, 4)
	want := []string{"• a: 1", "▸ b: []", "", ""}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Errorf("View: (-want, +got)\n%s", diff)
	}
}

func TestViewValueKinds(t *testing.T) {
	m := newModel(t, `{"s":"x\"y","n":1.50,"t":true,"z":null,"o":{}}`, 40, 5)
	want := []string{
		`• s: "x\"y"`,
		"• n: 1.5",
		"• t: true",
		"• z: null",
		"▸ o: {}",
	}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Errorf("View: (-want, +got)\n%s", diff)
	}
}

func TestViewTopLevelPrimitive(t *testing.T) {
	m := newModel(t, `"hello"`, 20, 1)
	if diff := cmp.Diff([]string{`• "hello"`}, viewLines(m)); diff != "" {
		t.Errorf("View: (-want, +got)\n%s", diff)
	}
}

func TestViewTruncates(t *testing.T) {
	m := newModel(t, `{"long":"abcdefghijklmnop"}`, 12, 1)
	got := viewLines(m)[0]
	if w := ansi.StringWidth(got); w > 12 {
		t.Fatalf("row width: got %d, want <= 12 (%q)", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("row: got %q, want ellipsis suffix", got)
	}
}

func TestExpandCollapseKeys(t *testing.T) {
	m := newModel(t, `{"a":1,"b":[1,2]}`, 30, 5)
	m = press(t, m, "down", "right")
	want := []string{"• a: 1", "▾ b: []", "  • 0: 1", "  • 1: 2", ""}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("after expand: (-want, +got)\n%s", diff)
	}

	m = press(t, m, "down")
	if got := selectedKey(t, m); got != "$.b[0]" {
		t.Fatalf("selected: got %q, want %q", got, "$.b[0]")
	}
	// Left on a leaf moves to its parent, then collapses it.
	m = press(t, m, "left")
	if got := selectedKey(t, m); got != "$.b" {
		t.Fatalf("selected after left: got %q, want %q", got, "$.b")
	}
	m = press(t, m, "left")
	if got := len(m.Rows()); got != 2 {
		t.Fatalf("rows after collapse: got %d, want 2", got)
	}

	m = press(t, m, "enter")
	if got := len(m.Rows()); got != 4 {
		t.Fatalf("rows after enter: got %d, want 4", got)
	}
	m = press(t, m, "space")
	if got := len(m.Rows()); got != 2 {
		t.Fatalf("rows after space: got %d, want 2", got)
	}
}

func TestExpandAllCollapseAll(t *testing.T) {
	m := newModel(t, `{"a":{"b":{"c":[1]}},"d":2}`, 30, 10)
	m = press(t, m, "*")
	var paths []string
	for _, n := range m.Rows() {
		paths = append(paths, n.Path())
	}
	want := []string{"$.a", "$.a.b", "$.a.b.c", "$.a.b.c[0]", "$.d"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("rows after expand all: (-want, +got)\n%s", diff)
	}

	m = press(t, m, "down", "down", "down")
	if got := selectedKey(t, m); got != "$.a.b.c[0]" {
		t.Fatalf("selected: got %q", got)
	}
	m = press(t, m, "-")
	if got := len(m.Rows()); got != 2 {
		t.Fatalf("rows after collapse all: got %d, want 2", got)
	}
	if got := selectedKey(t, m); got != "$.a" {
		t.Fatalf("selected after collapse all: got %q, want %q", got, "$.a")
	}
}

func TestNavigationClamps(t *testing.T) {
	m := newModel(t, `[1,2,3,4,5,6]`, 20, 3)
	m = press(t, m, "up")
	if got := selectedKey(t, m); got != "$[0]" {
		t.Fatalf("selected: got %q, want $[0]", got)
	}
	m = press(t, m, "end")
	if got := selectedKey(t, m); got != "$[5]" {
		t.Fatalf("selected after end: got %q, want $[5]", got)
	}
	want := []string{"• 3: 4", "• 4: 5", "• 5: 6"}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("View after end: (-want, +got)\n%s", diff)
	}
	m = press(t, m, "down", "home")
	if got := selectedKey(t, m); got != "$[0]" {
		t.Fatalf("selected after home: got %q, want $[0]", got)
	}
}

func TestBlurredIgnoresKeys(t *testing.T) {
	m := newModel(t, `[1,2]`, 20, 2).Blur()
	m = press(t, m, "down")
	if got := selectedKey(t, m); got != "$[0]" {
		t.Fatalf("selected: got %q, want $[0]", got)
	}
}

func TestReveal(t *testing.T) {
	m := newModel(t, `{"a":1,"b":[1,2]}`, 30, 4)
	m = press(t, m, "down")
	_, cmd := m.Update(keyMsg("o"))
	if cmd == nil {
		t.Fatal("reveal: got nil cmd")
	}
	got, ok := cmd().(tree.RevealMsg)
	if !ok {
		t.Fatalf("reveal: got %T, want tree.RevealMsg", cmd())
	}
	if diff := cmp.Diff(tree.RevealMsg{Offset: 11, Path: "$.b"}, got); diff != "" {
		t.Errorf("RevealMsg: (-want, +got)\n%s", diff)
	}
}

func TestMouse(t *testing.T) {
	m := newModel(t, `{"a":1,"b":[1,2]}`, 30, 4)

	// Clicking a label selects without toggling.
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := selectedKey(t, m); got != "$.b" {
		t.Fatalf("selected: got %q, want $.b", got)
	}
	if got := len(m.Rows()); got != 2 {
		t.Fatalf("rows: got %d, want 2", got)
	}

	// Clicking the icon toggles.
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := len(m.Rows()); got != 4 {
		t.Fatalf("rows after icon click: got %d, want 4", got)
	}

	// Rows past the end are ignored.
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := selectedKey(t, m); got != "$.b" {
		t.Fatalf("selected after miss: got %q, want $.b", got)
	}
}

func TestMouseWheel(t *testing.T) {
	m := newModel(t, `[1,2,3,4,5,6,7,8]`, 20, 2)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if diff := cmp.Diff([]string{"• 3: 4", "• 4: 5"}, viewLines(m)); diff != "" {
		t.Fatalf("View after wheel: (-want, +got)\n%s", diff)
	}
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if diff := cmp.Diff([]string{"• 6: 7", "• 7: 8"}, viewLines(m)); diff != "" {
		t.Fatalf("View at bottom: (-want, +got)\n%s", diff)
	}
}

func TestSetValueResets(t *testing.T) {
	m := newModel(t, `{"a":[1]}`, 20, 3)
	m = press(t, m, "right")
	m = m.SetValue(mustParse(t, `{"a":[1]}`))
	if got := len(m.Rows()); got != 1 {
		t.Fatalf("rows after SetValue: got %d, want 1", got)
	}
	if m.Rows()[0].Expanded {
		t.Fatal("node kept expand state across SetValue")
	}
}

func TestViewEscapesControlCharacters(t *testing.T) {
	m := newModel(t, `{"a\nb":1,"c\u001b]52;c;aGk=\u0007":"x\u009by","d":2}`, 60, 3)

	view := m.View()
	if got, want := len(strings.Split(view, "\n")), len(m.Rows()); got != want {
		t.Fatalf("View lines: got %d, want %d (one per row)", got, want)
	}
	for _, raw := range []string{"\x1b]52", "\x07", "\u009b", "a\nb"} {
		if strings.Contains(view, raw) {
			t.Fatalf("View contains raw %q: %q", raw, view)
		}
	}
	want := []string{
		`• a\nb: 1`,
		`• c\u001b]52;c;aGk=\u0007: "x\u009by"`,
		`• d: 2`,
	}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("View: (-want, +got)\n%s", diff)
	}

	// Rows still map one-to-one to screen lines.
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := selectedKey(t, m); got != "$.d" {
		t.Fatalf("selected: got %q, want $.d", got)
	}
	m = press(t, m, "up")
	if got, want := selectedKey(t, m), `$['c\u001b]52;c;aGk=\u0007']`; got != want {
		t.Fatalf("Path: got %q, want %q", got, want)
	}
}
