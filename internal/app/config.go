package app

import (
	"log/slog"

	"github.com/iw2rmb/jsonview/editor"
	"github.com/iw2rmb/jsonview/settings"
)

// Config configures the application Model.
type Config struct {
	// Text seeds the document.
	Text string
	// Fragment is a share link or fragment to restore at startup. When it
	// decodes, its pretty form replaces Text.
	Fragment string
	// BaseURL prefixes share links.
	BaseURL string

	// Store persists the theme. Nil means an in-memory store.
	Store settings.Store
	// Theme overrides the stored theme for this session.
	Theme *settings.Theme

	// Clipboard receives Copy. Nil disables copying.
	Clipboard editor.Clipboard

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap
	Logger *slog.Logger
}
