package qwenclient

import (
	"errors"
	"fmt"
)

// ErrEmptyReply indicates the endpoint answered successfully but returned no
// choices.
var ErrEmptyReply = errors.New("model returned an empty reply")

// RemoteError is a non-2xx response from the endpoint. Body carries the raw
// response text; it is deliberately not parsed, so whatever the server said is
// surfaced verbatim.
type RemoteError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("chat request failed (%d): %s", e.StatusCode, e.Body)
}

// TransportError wraps a failure to build, serialize, or deliver the request.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a failure to decode a successful response body.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
