// Package selection tracks the session's current character.
//
// The current selection is a detached copy of one record, so vote changes are
// applied to it immediately without touching the record store or waiting for
// the network. A new selection replaces the previous one wholesale; a failed
// selection leaves the previous one in place.
package selection
