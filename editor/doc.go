// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, and host integration hooks (line decorations,
// highlighting, clipboard, and change events).
package editor
