// Package backend is a json-server compatible /characters API for development.
//
// It stores characters through GORM (sqlite or mysql), can seed an empty table
// from a json-server db.json file, and serves character images from object
// storage under /images. With read_only set, every write answers 403, which is
// how json-server behaves with --read-only.
//
// Routes:
//
//	GET   /characters
//	GET   /characters/:id
//	PATCH /characters/:id   {"votes": n}
//	POST  /characters       {"name": "...", "image": "...", "votes": 0}
//	GET   /images/*
//	PUT   /images/*
package backend
