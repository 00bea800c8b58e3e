package session

import "fmt"

// FetchStatus is the outcome of FetchLoginUser.
type FetchStatus int

const (
	// FetchUpdated: the backend returned a user and the state was replaced.
	FetchUpdated FetchStatus = iota
	// FetchRejected: the envelope carried a non-success code.
	FetchRejected
	// FetchEmpty: success code but no data.
	FetchEmpty
	// FetchFailed: the call itself failed (transport, status, decoding).
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchUpdated:
		return "updated"
	case FetchRejected:
		return "rejected"
	case FetchEmpty:
		return "empty"
	case FetchFailed:
		return "failed"
	default:
		return fmt.Sprintf("FetchStatus(%d)", int(s))
	}
}

// FetchResult describes one FetchLoginUser call.
//
// Code and Message come from the envelope when one was decoded. Err is set
// for FetchFailed, and for FetchUpdated when the new user could not be
// persisted (memory is updated regardless).
type FetchResult struct {
	Status  FetchStatus
	Code    int
	Message string
	Err     error
}

// Updated reports whether the in-memory user was replaced.
func (r FetchResult) Updated() bool {
	return r.Status == FetchUpdated
}
