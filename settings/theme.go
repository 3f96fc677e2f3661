package settings

import (
	"errors"
	"fmt"
	"strings"
)

// ThemeKey is the store key holding the theme name.
const ThemeKey = "theme"

// ErrInvalidTheme is returned for a theme name other than light or dark.
var ErrInvalidTheme = errors.New("settings: invalid theme")

type Theme uint8

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme accepts "light" or "dark", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// LoadTheme reads the stored theme. An unset key yields Light. A stored
// value that does not parse yields Light and an error.
func LoadTheme(s Store) (Theme, error) {
	v, ok, err := s.Get(ThemeKey)
	if err != nil || !ok {
		return Light, err
	}
	return ParseTheme(v)
}

func SaveTheme(s Store, t Theme) error {
	return s.Set(ThemeKey, t.String())
}
