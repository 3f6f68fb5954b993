// Package models defines the character record shared by the session client and
// the development backend.
//
// Records arriving from a remote are decoded leniently: ids may be numbers or
// numeric strings, and a vote count that is missing, null, non-numeric or
// negative is normalized to zero.
package models
