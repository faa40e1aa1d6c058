// Package docset converts a rendered rustdoc HTML tree into a Dash docset:
// a directory bundle with an info.plist and a SQLite search index that a
// documentation browser can consume.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, etree/).
package docset
