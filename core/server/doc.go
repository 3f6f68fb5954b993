// Package server holds the HTTP server configuration shared by the session API
// and the development backend.
//
// While the command entry points handle server startup, this package defines the
// configuration structure and its validation.
package server
