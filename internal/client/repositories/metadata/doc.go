// Package metadata provides the client-side key/value persistence medium the
// login session is stored in.
//
// # Overview
//
// Repository is a small synchronous key/value contract (Get/Set/Delete plus
// List/Clear for housekeeping). Values are opaque bytes; callers serialize.
//
// Implementations
//
//   - SQLiteRepository: table "metadata" over dbx.DBTX (schema from migrations)
//   - FileRepository: one JSON document, rewritten atomically on change
//   - RedisRepository: plain string keys under a prefix
//   - MemoryRepository: process-local map, mostly for tests
//
// All implementations are safe for concurrent use.
package metadata
