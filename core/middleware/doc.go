// Package middleware contains HTTP middleware for the Fiber applications.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the session API.
//   - rayid: assigns a Request ID (RayID) to every request, stores it in the
//     context locals and echoes it in the X-Ray-ID response header.
package middleware
