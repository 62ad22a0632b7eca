package freejourney

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingToken is returned by New when no API token is given.
	ErrMissingToken = errors.New("missing API token")
	// ErrInvalidFill is returned by FilterText for a fill character outside of
	// the accepted set. No request is sent.
	ErrInvalidFill = errors.New("invalid fill character")
	// ErrInvalidImageCount is returned by image searches for a number of
	// images other than 1 or 4. No request is sent.
	ErrInvalidImageCount = errors.New("invalid number of images")
)

// TransportError means the request never reached the server, or the server
// response could not be understood.
type TransportError struct {
	Operation Operation
	Label     string
	Method    string
	Url       string
	Cause     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Label, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ApiError means the server answered, but signaled a failure, either through
// its status code or through `success: false` in the response envelope.
type ApiError struct {
	Operation  Operation
	Label      string
	StatusCode int
	// Message is the message sent by the server, or the HTTP status when the
	// server did not provide any.
	Message string
	// Raw is the response body as received.
	Raw []byte
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Label, e.Message)
}

func newTransportError(ep Endpoint, url string, cause error) *TransportError {
	return &TransportError{
		Operation: ep.Operation,
		Label:     ep.Label,
		Method:    ep.Method,
		Url:       url,
		Cause:     cause,
	}
}

func newApiError(ep Endpoint, status int, message string, raw []byte) *ApiError {
	if message == "" {
		message = fmt.Sprintf("http %d %s", status, http.StatusText(status))
	}

	return &ApiError{
		Operation:  ep.Operation,
		Label:      ep.Label,
		StatusCode: status,
		Message:    message,
		Raw:        raw,
	}
}

// argumentError marks a parameter rejected before dispatch with a sentinel,
// prefixed by the operation label.
func argumentError(op Operation, sentinel error, format string, args ...any) error {
	return errors.Wrapf(sentinel, "%s failed: "+format, append([]any{descriptors[op].label}, args...)...)
}

// IsTransportError reports whether err, or any error it wraps, is a
// *TransportError.
func IsTransportError(err error) bool {
	var e *TransportError

	return errors.As(err, &e)
}

// IsApiError reports whether err, or any error it wraps, is an *ApiError.
func IsApiError(err error) bool {
	var e *ApiError

	return errors.As(err, &e)
}
