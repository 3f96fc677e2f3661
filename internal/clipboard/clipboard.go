// Package clipboard connects the editor's Clipboard interface to the
// system clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// ErrUnavailable is returned by ReadText when no system clipboard tool is
// installed. OSC52 is write-only.
var ErrUnavailable = errors.New("clipboard: system clipboard unavailable")

// System reads and writes the OS clipboard. When no clipboard tool is
// installed, writes are sent to the terminal as an OSC52 sequence instead.
type System struct {
	out *termenv.Output

	unsupported bool
	write       func(string) error
	read        func() (string, error)
}

// New returns a System clipboard. out receives OSC52 writes; nil disables
// the fallback.
func New(out *termenv.Output) *System {
	return &System{
		out:         out,
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
		read:        clipboard.ReadAll,
	}
}

func (s *System) WriteText(text string) error {
	if !s.unsupported {
		err := s.write(text)
		if err == nil || s.out == nil {
			return err
		}
	}
	if s.out == nil {
		return ErrUnavailable
	}
	s.out.Copy(text)
	return nil
}

func (s *System) ReadText() (string, error) {
	if s.unsupported {
		return "", ErrUnavailable
	}
	return s.read()
}

// Memory is a process-local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
