package codeforces

//
// Error taxonomy: transport, decode, and API-reported failures.
//

import (
	"errors"

	"github.com/contestwire/codeforces/optional"
)

var (
	// ErrClientClosed indicates that a call was made after Close.
	ErrClientClosed = errors.New("codeforces: client is closed")

	// ErrTransport wraps network-level failures: connection refused,
	// timeouts, TLS errors, and the like.
	ErrTransport = errors.New("codeforces: transport error")

	// ErrDecode wraps failures to decode the response body as the
	// expected JSON envelope.
	ErrDecode = errors.New("codeforces: cannot decode response")
)

// apiErrorFallbackMessage is the message used when the server reports
// a failure without attaching a comment.
const apiErrorFallbackMessage = "Unknown API error"

// APIError is the error returned when the envelope decodes correctly
// but the server reports a non-OK status. This is the only expected
// application-level failure: use errors.As to distinguish "the remote
// service rejected my request" from transport and decode errors.
type APIError struct {
	// Comment is the human-readable error text sent by the server,
	// empty when the server omitted it.
	Comment string
}

var _ error = &APIError{}

// Error implements error.
func (err *APIError) Error() string {
	if err.Comment != "" {
		return err.Comment
	}
	return apiErrorFallbackMessage
}

// newAPIError constructs an [*APIError] from the envelope comment.
func newAPIError(comment optional.Value[string]) *APIError {
	return &APIError{Comment: comment.UnwrapOr("")}
}
