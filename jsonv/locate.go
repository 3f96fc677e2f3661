package jsonv

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var positionRE = regexp.MustCompile(`at position (\d+)`)

// Offset extracts the byte offset an error refers to. A *ParseError
// supplies it directly; any other error is searched for "at position N".
func Offset(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Offset, pe.Offset >= 0
	}
	m := positionRE.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	off, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0, false
	}
	return off, true
}

// Locate returns the 1-based line of text an error points at, or 0 when
// the error carries no position.
func Locate(err error, text string) int {
	off, ok := Offset(err)
	if !ok {
		return 0
	}
	return LineAt(text, off)
}

// LineAt returns 1 plus the number of line feeds strictly before off.
// Offsets past the end count the whole text.
func LineAt(text string, off int) int {
	off = min(max(off, 0), len(text))
	return strings.Count(text[:off], "\n") + 1
}
