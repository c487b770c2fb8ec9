// Package apierrors provides shared error types for the certifier client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultStatus is reported by errors that carry no HTTP status of their own.
const DefaultStatus = http.StatusInternalServerError

// Kind classifies an Error.
type Kind string

const (
	// KindParameter indicates invalid constructor or call arguments.
	KindParameter Kind = "parameter"
	// KindTransport indicates a network-level failure (DNS, connect, timeout).
	KindTransport Kind = "transport"
	// KindHTTPStatus indicates the service answered outside the 2xx range.
	KindHTTPStatus Kind = "http_status"
	// KindBadResponse indicates a 2xx answer whose body is not valid JSON.
	KindBadResponse Kind = "bad_response"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrParameter matches every parameter error.
	ErrParameter = errors.New("invalid parameter")

	// ErrTransport matches every transport error.
	ErrTransport = errors.New("transport failure")

	// ErrHTTPStatus matches every non-2xx response.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrBadResponse matches every unparseable 2xx response.
	ErrBadResponse = errors.New("bad response")

	// ErrUnauthorized is returned when the credentials are rejected (401).
	ErrUnauthorized = errors.New("invalid or expired credentials")

	// ErrForbidden is returned when the credentials lack access (403).
	ErrForbidden = errors.New("access denied")

	// ErrNotFound is returned when the certification does not exist (404).
	ErrNotFound = errors.New("certification not found")

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidCredentials is returned when neither an access token nor a
	// client id and secret pair is supplied, or when both are.
	ErrInvalidCredentials = errors.New("use CLIENT_ID and CLIENT_SECRET, or ACCESS_TOKEN")

	// ErrMissingBaseURL is returned when no API base URL is configured.
	ErrMissingBaseURL = errors.New("API base URL is required")

	// ErrEmptyPayload is returned when there is nothing to certify.
	ErrEmptyPayload = errors.New("nothing to certify")

	// ErrInvalidLink is returned when a link entry has no URL.
	ErrInvalidLink = errors.New("invalid link")

	// ErrMissingID is returned when a certification id is empty.
	ErrMissingID = errors.New("certification id is required")

	// ErrMissingFile is returned when a file to certify cannot be read.
	ErrMissingFile = errors.New("file to certify is missing")
)

// Error is the single error type surfaced by the client. Status mirrors an
// HTTP code even for failures that never reached the service.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
		}
		return fmt.Sprintf("API error %d", e.Status)
	case KindTransport:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindBadResponse:
		if e.Err != nil {
			return fmt.Sprintf("bad response: %s: %v", e.Message, e.Err)
		}
		return fmt.Sprintf("bad response: %s", e.Message)
	default:
		if e.Message != "" {
			return fmt.Sprintf("invalid parameter: %s", e.Message)
		}
		return fmt.Sprintf("invalid parameter: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns Status, or DefaultStatus when unset.
func (e *Error) StatusCode() int {
	if e.Status == 0 {
		return DefaultStatus
	}
	return e.Status
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindParameter:
		return target == ErrParameter
	case KindTransport:
		return target == ErrTransport
	case KindBadResponse:
		return target == ErrBadResponse
	case KindHTTPStatus:
		if target == ErrHTTPStatus {
			return true
		}
		switch e.Status {
		case http.StatusUnauthorized:
			return target == ErrUnauthorized
		case http.StatusForbidden:
			return target == ErrForbidden
		case http.StatusNotFound:
			return target == ErrNotFound
		case http.StatusTooManyRequests:
			return target == ErrRateLimited
		}
	}
	return false
}

// Parameter builds a parameter error with status 400.
func Parameter(err error, message string) *Error {
	return &Error{
		Kind:    KindParameter,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// Transport wraps a network-level failure.
func Transport(err error) *Error {
	return &Error{
		Kind:   KindTransport,
		Status: DefaultStatus,
		Err:    err,
	}
}

// HTTPStatus builds an error for a non-2xx response.
func HTTPStatus(status int, message string) *Error {
	return &Error{
		Kind:    KindHTTPStatus,
		Message: message,
		Status:  status,
	}
}

// BadResponse builds an error for a body that could not be parsed.
func BadResponse(message string, err error) *Error {
	return &Error{
		Kind:    KindBadResponse,
		Message: message,
		Status:  DefaultStatus,
		Err:     err,
	}
}
