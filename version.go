// Package jsonview is a terminal JSON inspector: a raw-JSON editor pane, a
// live collapsible tree view, a pretty-printed text view, and shareable
// base64 link fragments.
//
// The program lives in cmd/jsonview. The packages beneath this module are
// usable on their own: buffer and editor provide the editing component, jsonv
// parses and serializes JSON, tree and textview render parsed values, and
// urlstate encodes documents into link fragments.
package jsonview

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version of jsonview (SemVer, without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// UserAgent identifies jsonview in share links and log records.
func UserAgent() string {
	return "jsonview/" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
