package models

// CodeSuccess is the envelope code the backend uses for a successful call.
const CodeSuccess = 0

// Envelope wraps every backend response.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Data    *T     `json:"data"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the backend signalled success.
func (e *Envelope[T]) OK() bool {
	return e != nil && e.Code == CodeSuccess
}
