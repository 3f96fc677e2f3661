package clipboard

import (
	"os"
	"sync"
)

// Terminal is the program's output file with serialized writes. The
// Bubble Tea renderer writes each frame in one call, so an OSC52 sequence
// written through the same Terminal lands between frames, never inside one.
type Terminal struct {
	*os.File
	mu sync.Mutex
}

func NewTerminal(f *os.File) *Terminal { return &Terminal{File: f} }

func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.File.Write(p)
}

func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}
