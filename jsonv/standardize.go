package jsonv

import (
	"fmt"

	"github.com/tailscale/hujson"
)

// Standardize converts JWCC text (JSON with comments and trailing commas)
// into standard JSON and parses it. Comments are dropped.
func Standardize(text string) (*Value, error) {
	b, err := hujson.Standardize([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("jsonv: standardize: %w", err)
	}
	return Parse(string(b))
}
