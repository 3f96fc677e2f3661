// Package urlstate encodes a JSON document into a share-link fragment and
// back.
//
// A fragment is the standard base64 encoding of the document's compact JSON
// serialization, as UTF-8 bytes. Decoding is forgiving in the same ways as a
// browser's atob: ASCII whitespace is ignored and padding may be omitted.
package urlstate

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/jsonview/jsonv"
)

// ErrInvalidFragment is wrapped by every Decode failure.
var ErrInvalidFragment = errors.New("urlstate: invalid fragment")

// Encode returns the fragment for v, without the leading '#'.
func Encode(v *jsonv.Value) string {
	return base64.StdEncoding.EncodeToString([]byte(jsonv.Compact(v)))
}

// Decode parses a fragment produced by Encode. A leading '#' is accepted.
func Decode(fragment string) (*jsonv.Value, error) {
	raw, err := decodeBase64(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: not UTF-8", ErrInvalidFragment)
	}
	v, err := jsonv.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}
	return v, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, s)
	// Like atob: up to two pad characters, and only on a full final quantum.
	if len(s)%4 == 0 {
		s = strings.TrimSuffix(s, "=")
		s = strings.TrimSuffix(s, "=")
	}
	if len(s)%4 == 1 {
		return nil, errors.New("truncated base64")
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// FragmentOf extracts the fragment from a full link, a "#frag" string, or
// a bare fragment.
func FragmentOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		return raw[i+1:]
	}
	return raw
}

// Link joins base and fragment into a share link. Any fragment already on
// base is replaced.
func Link(base, fragment string) string {
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return base + "#" + fragment
}
