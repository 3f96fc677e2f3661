package jsonv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theory/jsonpath"
)

// ErrEmptyQuery is returned by Query for a blank expression.
var ErrEmptyQuery = errors.New("jsonv: empty JSONPath expression")

// Query evaluates an RFC 9535 JSONPath expression against v and returns the
// matched nodes as an array value.
func Query(v *Value, expr string) (*Value, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyQuery
	}
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("jsonv: invalid JSONPath %q: %w", expr, err)
	}

	nodes := path.Select(ToAny(v))
	out, err := FromAny([]any(nodes))
	if err != nil {
		return nil, fmt.Errorf("jsonv: query result: %w", err)
	}
	return out, nil
}
