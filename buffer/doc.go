// Package buffer implements the document model behind the jsonview editor
// pane: grapheme-accurate lines, a cursor, a selection, and a record of the
// last effective change.
//
// Coordinates are 0-based (Row, GraphemeCol). Ranges are half-open:
// [Start, End).
package buffer
