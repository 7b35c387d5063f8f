package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork covers everything that kept a request from getting an
	// answer: refused connections, timeouts, cancelled contexts.
	ErrNetwork = errors.New("network error")
	// ErrServer is a response the server produced but that is not a success.
	ErrServer = errors.New("server error")
	// ErrNotFound is returned when the targeted record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = errors.New("client unauthorized")
)

// ResponseError describes a failed response. Unwrap returns one of the
// sentinels above so errors.Is works on it.
type ResponseError struct {
	// StatusCode is the HTTP status, 200 for GraphQL-level errors.
	StatusCode int
	// Code is the GraphQL extensions.code, if any.
	Code string
	// Message is the server's message, verbatim.
	Message string

	kind error
}

// NewResponseError builds a ResponseError of the given kind, which should be
// one of the sentinels above.
func NewResponseError(kind error, statusCode int, code, message string) *ResponseError {
	return &ResponseError{StatusCode: statusCode, Code: code, Message: message, kind: kind}
}

func (e *ResponseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (http %d, %s): %s", e.kind, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
