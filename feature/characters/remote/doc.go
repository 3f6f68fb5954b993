// Package remote talks to the /characters collection of a json-server style backend.
//
// Every transport outcome is translated into a typed result; nothing in this
// package panics or mutates local state.
//
// # Operations
//
//   - FetchAll:     GET   {base}/characters
//   - FetchByID:    GET   {base}/characters/:id
//   - PersistVotes: PATCH {base}/characters/:id with {"votes": n}
//   - CreateRecord: POST  {base}/characters with {"name", "image", "votes": 0}
//
// # Errors
//
//   - NetworkError: the request never produced a response (refused, timeout, cancelled).
//   - ServerError: a read answered with a non-2xx status.
//   - RejectedError: a write answered with a non-2xx status (e.g. a read-only backend).
//   - DecodeError: a 2xx answer whose body is not a character record.
//
// A rejected create is not an error: CreateRecord reports it as an unconfirmed
// Created result so the caller can fall back to a local record.
package remote
