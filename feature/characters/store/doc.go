// Package store holds the session's ordered, in-memory cache of character records.
//
// The store is replaced wholesale on every full fetch and updated one record at a
// time when persistence or creation completes. Ids are unique within the store.
package store
