// Package characters implements the character voting session.
//
// A session keeps a local cache of the remote /characters collection and applies
// votes and new characters optimistically, reconciling with the remote once it
// answers.
//
// # Components
//
//   - models: the character record and create candidate.
//   - store: the ordered in-memory record store.
//   - remote: the REST adapter for the /characters collection.
//   - selection: the detached current selection.
//   - reconcile: the engine tying them together.
//   - Service / Handler / Feature: expose one session over HTTP for a UI.
//
// # HTTP Endpoints
//
//   - GET    /session/characters          : cached records
//   - POST   /session/characters          : create a character
//   - POST   /session/characters/refresh  : reload from the remote
//   - GET    /session/current             : current selection
//   - PUT    /session/current/:id         : select a character
//   - POST   /session/current/votes       : add a vote
//   - DELETE /session/current/votes       : reset votes
//   - GET    /session/status              : latest status notification
package characters
