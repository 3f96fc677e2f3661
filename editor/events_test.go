package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/jsonview/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})
	if len(events) != 0 {
		t.Fatalf("New must not fire OnChange, got %d events", len(events))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if events[0].TextChanged {
		t.Fatalf("cursor move reported as text change")
	}
	if got := events[0].Cursor; got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("event cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to EOL
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if !events[2].TextChanged || events[2].TextVersion != 1 {
		t.Fatalf("insert event: %+v", events[2])
	}
}

func TestOnChange_FiresOnSetText(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m = m.SetText(`{"a":1}`)
	if len(events) != 1 || !events[0].TextChanged || events[0].Text != `{"a":1}` {
		t.Fatalf("events after SetText: %+v", events)
	}

	_ = m.SetText(`{"a":1}`)
	if len(events) != 1 {
		t.Fatalf("identical SetText fired OnChange: %d events", len(events))
	}
}
