package editor

import "github.com/iw2rmb/jsonview/buffer"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	// TextChanged is false for pure cursor or selection updates.
	TextChanged bool
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}

	// Full text; hosts re-parse it on every change.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		TextChanged: textChanged,
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
