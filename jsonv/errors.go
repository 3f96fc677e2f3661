package jsonv

import (
	"fmt"
	"unicode/utf8"
)

// ParseError reports malformed JSON.
type ParseError struct {
	// Message is the full error text, e.g.
	// "Unexpected token } in JSON at position 7".
	Message string
	// Offset is the byte offset of the offending character, or -1 when the
	// input ended early.
	Offset int
}

func (e *ParseError) Error() string { return e.Message }

func errUnexpectedEnd() *ParseError {
	return &ParseError{Message: "Unexpected end of JSON input", Offset: -1}
}

// errUnexpectedAt describes the character at off the way browsers do.
func errUnexpectedAt(text string, off int) *ParseError {
	if off >= len(text) {
		return errUnexpectedEnd()
	}
	off = max(off, 0)
	r, _ := utf8.DecodeRuneInString(text[off:])
	var what string
	switch {
	case r == '"':
		what = "string"
	case r == '-' || (r >= '0' && r <= '9'):
		what = "number"
	case r < 0x20 || (r >= 0x7f && r <= 0x9f):
		what = "token " + Escape(string(r))
	default:
		what = "token " + string(r)
	}
	return &ParseError{
		Message: fmt.Sprintf("Unexpected %s in JSON at position %d", what, off),
		Offset:  off,
	}
}
