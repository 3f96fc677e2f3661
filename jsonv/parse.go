package jsonv

import (
	"errors"
	"io"
	"strings"

	"github.com/creachadair/jtree"
)

// Parse parses text as exactly one JSON value, optionally surrounded by
// whitespace. Errors are *ParseError.
func Parse(text string) (*Value, error) {
	st := jtree.NewStream(strings.NewReader(text))

	b := new(builder)
	if err := st.ParseOne(b); err != nil {
		return nil, toParseError(err, text)
	}
	if b.root == nil {
		return nil, errUnexpectedEnd()
	}

	// Anything after the first value is an error.
	if err := st.ParseOne(trailing{text: text}); !errors.Is(err, io.EOF) {
		return nil, toParseError(err, text)
	}
	return b.root, nil
}

func toParseError(err error, text string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	if errors.Is(err, io.EOF) {
		return errUnexpectedEnd()
	}
	var se *jtree.SyntaxError
	if errors.As(err, &se) {
		return errUnexpectedAt(text, offsetOf(text, se.Location))
	}
	return &ParseError{Message: err.Error(), Offset: -1}
}

// offsetOf converts a jtree line/column (1-based line, byte column) into a
// byte offset in text.
func offsetOf(text string, lc jtree.LineCol) int {
	off := 0
	for line := 1; line < lc.Line; line++ {
		i := strings.IndexByte(text[off:], '\n')
		if i < 0 {
			return len(text)
		}
		off += i + 1
	}
	return min(off+lc.Column, len(text))
}

// builder assembles a Value tree from stream events.
type builder struct {
	root  *Value
	stack []*Value
	// keys holds the pending member key of every open object.
	keys []string
	// pending holds the raw members of every open object before
	// normalization.
	pending [][]Member
}

func (b *builder) BeginObject(loc jtree.Anchor) error {
	b.stack = append(b.stack, &Value{kind: Object, span: Span{Pos: loc.Location().Pos}})
	b.pending = append(b.pending, nil)
	return nil
}

func (b *builder) EndObject(loc jtree.Anchor) error {
	v := b.pop(loc)
	n := len(b.pending) - 1
	v.members = normalizeMembers(b.pending[n])
	b.pending = b.pending[:n]
	b.attach(v)
	return nil
}

func (b *builder) BeginArray(loc jtree.Anchor) error {
	b.stack = append(b.stack, &Value{kind: Array, span: Span{Pos: loc.Location().Pos}})
	return nil
}

func (b *builder) EndArray(loc jtree.Anchor) error {
	b.attach(b.pop(loc))
	return nil
}

func (b *builder) BeginMember(loc jtree.Anchor) error {
	key, err := jtree.Unquote(string(loc.Text()))
	if err != nil {
		return err
	}
	b.keys = append(b.keys, string(key))
	return nil
}

func (b *builder) EndMember(jtree.Anchor) error { return nil }

func (b *builder) Value(loc jtree.Anchor) error {
	v, err := primitive(loc)
	if err != nil {
		return err
	}
	b.attach(v)
	return nil
}

func (b *builder) EndOfInput(jtree.Anchor) {}

func (b *builder) pop(loc jtree.Anchor) *Value {
	n := len(b.stack) - 1
	v := b.stack[n]
	b.stack = b.stack[:n]
	v.span.End = loc.Location().End
	return v
}

func (b *builder) attach(v *Value) {
	if len(b.stack) == 0 {
		b.root = v
		return
	}
	parent := b.stack[len(b.stack)-1]
	if parent.kind == Array {
		parent.items = append(parent.items, v)
		return
	}
	k := len(b.keys) - 1
	key := b.keys[k]
	b.keys = b.keys[:k]
	p := len(b.pending) - 1
	b.pending[p] = append(b.pending[p], Member{Key: key, Value: v})
}

func primitive(loc jtree.Anchor) (*Value, error) {
	l := loc.Location()
	span := Span{Pos: l.Pos, End: l.End}
	switch loc.Token() {
	case jtree.String:
		s, err := jtree.Unquote(string(loc.Text()))
		if err != nil {
			return nil, err
		}
		return &Value{kind: String, text: string(s), span: span}, nil
	case jtree.Integer, jtree.Number:
		return &Value{kind: Number, text: string(loc.Copy()), span: span}, nil
	case jtree.True:
		return &Value{kind: Bool, text: "true", span: span}, nil
	case jtree.False:
		return &Value{kind: Bool, text: "false", span: span}, nil
	default:
		return &Value{kind: Null, span: span}, nil
	}
}

// trailing rejects any value after the first one.
type trailing struct{ text string }

func (t trailing) fail(loc jtree.Anchor) error {
	return errUnexpectedAt(t.text, loc.Location().Pos)
}

func (t trailing) BeginObject(loc jtree.Anchor) error { return t.fail(loc) }
func (t trailing) EndObject(loc jtree.Anchor) error   { return t.fail(loc) }
func (t trailing) BeginArray(loc jtree.Anchor) error  { return t.fail(loc) }
func (t trailing) EndArray(loc jtree.Anchor) error    { return t.fail(loc) }
func (t trailing) BeginMember(loc jtree.Anchor) error { return t.fail(loc) }
func (t trailing) EndMember(loc jtree.Anchor) error   { return t.fail(loc) }
func (t trailing) Value(loc jtree.Anchor) error       { return t.fail(loc) }
func (t trailing) EndOfInput(jtree.Anchor)            {}
