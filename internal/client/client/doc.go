// Package client talks to the LoginKeeper backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     GetLoginUser and Ping.
//  2. A concrete HTTP implementation (see HTTPClient) that keeps the
//     backend's session cookie in a cookie jar, tags every request with an
//     X-Request-Id and decodes the backend's {code, data, message} envelope.
//
// # Error Handling
//
// Transport and protocol conditions are exposed as sentinel errors matched
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrUnexpectedStatus,
// ErrMalformedResponse. A decoded envelope with a non-zero code is NOT an
// error here; interpreting the code is up to the caller. When the caller's
// context ends, its error (context.Canceled or context.DeadlineExceeded) is
// returned instead of ErrUnavailable.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; there is no timeout beyond the context unless one is
// configured with WithTimeout.
package client
