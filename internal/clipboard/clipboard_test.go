package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/muesli/termenv"
)

func fakeSystem(out *termenv.Output, unsupported bool, writeErr error) (*System, *string) {
	var stored string
	s := &System{
		out:         out,
		unsupported: unsupported,
		write: func(text string) error {
			if writeErr != nil {
				return writeErr
			}
			stored = text
			return nil
		},
		read: func() (string, error) { return stored, nil },
	}
	return s, &stored
}

func TestSystemWritesOSClipboard(t *testing.T) {
	var buf bytes.Buffer
	s, stored := fakeSystem(termenv.NewOutput(&buf), false, nil)

	if err := s.WriteText(`{"a":1}`); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if *stored != `{"a":1}` {
		t.Fatalf("stored: got %q", *stored)
	}
	if buf.Len() != 0 {
		t.Fatalf("terminal output: got %q, want none", buf.String())
	}
	got, err := s.ReadText()
	if err != nil || got != `{"a":1}` {
		t.Fatalf("ReadText: got %q, %v", got, err)
	}
}

func TestSystemFallsBackToOSC52(t *testing.T) {
	for _, tc := range []struct {
		name        string
		unsupported bool
		writeErr    error
	}{
		{"unsupported", true, nil},
		{"write error", false, errors.New("xclip failed")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			s, _ := fakeSystem(termenv.NewOutput(&buf), tc.unsupported, tc.writeErr)
			if err := s.WriteText("hi"); err != nil {
				t.Fatalf("WriteText: %v", err)
			}
			want := base64.StdEncoding.EncodeToString([]byte("hi"))
			if !strings.Contains(buf.String(), "52;c;"+want) {
				t.Fatalf("terminal output: got %q, want OSC52 with %q", buf.String(), want)
			}
		})
	}
}

func TestSystemWithoutFallback(t *testing.T) {
	s, _ := fakeSystem(nil, true, nil)
	if err := s.WriteText("hi"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("WriteText: got %v, want ErrUnavailable", err)
	}
	if _, err := s.ReadText(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("ReadText: got %v, want ErrUnavailable", err)
	}

	boom := errors.New("boom")
	s, _ = fakeSystem(nil, false, boom)
	if err := s.WriteText("hi"); !errors.Is(err, boom) {
		t.Fatalf("WriteText: got %v, want boom", err)
	}
}

func TestMemory(t *testing.T) {
	var m Memory
	if err := m.WriteText("x"); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ReadText(); got != "x" {
		t.Fatalf("ReadText: got %q, want %q", got, "x")
	}
}

func TestTerminalKeepsWritesWhole(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	term := NewTerminal(f)

	frame := strings.Repeat("F", 512) + "\n"
	s, _ := fakeSystem(termenv.NewOutput(term), true, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 50 {
			_, _ = term.Write([]byte(frame))
		}
	}()
	go func() {
		defer wg.Done()
		for range 50 {
			_ = s.WriteText("hi")
		}
	}()
	wg.Wait()

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	var one bytes.Buffer
	single, _ := fakeSystem(termenv.NewOutput(&one), true, nil)
	_ = single.WriteText("hi")
	seq := one.String()
	if seq == "" {
		t.Fatal("no OSC52 sequence written")
	}
	rest := string(data)
	frames, seqs := 0, 0
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, frame):
			rest = rest[len(frame):]
			frames++
		case strings.HasPrefix(rest, seq):
			rest = rest[len(seq):]
			seqs++
		default:
			t.Fatalf("interleaved output at %q", rest[:min(len(rest), 40)])
		}
	}
	if frames != 50 || seqs != 50 {
		t.Fatalf("got %d frames and %d sequences, want 50 each", frames, seqs)
	}
}
