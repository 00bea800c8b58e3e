// Package session holds the current login user for the client.
//
// A Holder keeps the user in memory, mirrors every change into a
// metadata.Repository under one key, and can refresh the user from the
// backend. It is constructed once by the application root and passed to
// whatever needs the user; there is no package-level instance.
//
// Write ordering
//
// Every mutation updates memory first and the repository second. The two are
// not transactional: if the repository write fails, memory already holds the
// new value and the error is returned. On the next start the repository is
// the source of truth.
//
// Fetch outcome
//
// FetchLoginUser never fails loudly. Anything other than a success envelope
// with data leaves the state untouched; the returned FetchResult says what
// happened so callers can react if they want to.
package session
