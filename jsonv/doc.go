// Package jsonv parses and serializes JSON the way a browser's JSON.parse
// and JSON.stringify do.
//
// Parse builds a Value tree from jtree stream events. Object members keep
// document order except that duplicate keys keep their first position with
// the last value, and array-index keys ("0", "1", ...) come first in
// ascending order. Numbers keep their literal text until serialization,
// where they are printed in the shortest round-trip form.
//
// Errors from Parse are *ParseError values whose message ends in
// "at position N", which Locate turns into a 1-based line.
package jsonv
