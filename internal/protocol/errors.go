package protocol

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProtocolViolation is returned when a response does not have the shape or cardinality the
// call expects, e.g. a missing result field or a batch response of the wrong length.
// It is always fatal for the call.
var ErrProtocolViolation = errors.New("protocol violation")

// APIError is an error envelope returned by the server for a whole call.
type APIError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d, %s (%d): %s", e.StatusCode, e.Code, int(e.Code), e.Message)
}

// ElementError is the failure of a single element inside a batch response. It has the same
// shape as an APIError without the call level status.
type ElementError struct {
	Code    ErrorCode `json:"errorNum"`
	Message string    `json:"errorMessage"`
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element error: %s (%d): %s", e.Code, int(e.Code), e.Message)
}

// TransportError reports that a call could not be completed: the request could not be encoded,
// sent, or its response could not be read. It is not attributable to the server.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "transport " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CodeOf returns the server error number carried by err, or NoError when err carries none.
func CodeOf(err error) ErrorCode {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var elemErr *ElementError
	if errors.As(err, &elemErr) {
		return elemErr.Code
	}
	return NoError
}

// StatusOf returns the HTTP status of an APIError in the chain of err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsPrecondition reports whether err is a failed revision precondition.
func IsPrecondition(err error) bool {
	return StatusOf(err) == http.StatusPreconditionFailed
}

// IsNotFound reports whether err is a not found error, for documents and collections alike.
// Use CodeOf to tell them apart.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsNotModified reports whether a read was answered with 304 because If-None-Match matched.
func IsNotModified(err error) bool {
	return StatusOf(err) == http.StatusNotModified
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
