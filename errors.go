package ucertify

import (
	"github.com/ucertify/client-go/internal/apierrors"
)

// Error is returned by every client operation. Status carries an HTTP-like
// code: 400 for parameter errors, 500 for transport and bad-response
// errors, and the actual response status otherwise.
type Error = apierrors.Error

// ErrorKind classifies an Error.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	// KindParameter indicates invalid constructor or call arguments.
	KindParameter = apierrors.KindParameter
	// KindTransport indicates the request never produced a response.
	KindTransport = apierrors.KindTransport
	// KindHTTPStatus indicates a response outside the 2xx range.
	KindHTTPStatus = apierrors.KindHTTPStatus
	// KindBadResponse indicates a 2xx response that is not valid JSON.
	KindBadResponse = apierrors.KindBadResponse
)

// Sentinel errors for errors.Is() checks
var (
	ErrParameter   = apierrors.ErrParameter
	ErrTransport   = apierrors.ErrTransport
	ErrHTTPStatus  = apierrors.ErrHTTPStatus
	ErrBadResponse = apierrors.ErrBadResponse

	ErrUnauthorized = apierrors.ErrUnauthorized
	ErrForbidden    = apierrors.ErrForbidden
	ErrNotFound     = apierrors.ErrNotFound
	ErrRateLimited  = apierrors.ErrRateLimited

	ErrInvalidCredentials = apierrors.ErrInvalidCredentials
	ErrMissingBaseURL     = apierrors.ErrMissingBaseURL
	ErrEmptyPayload       = apierrors.ErrEmptyPayload
	ErrInvalidLink        = apierrors.ErrInvalidLink
	ErrMissingID          = apierrors.ErrMissingID
	ErrMissingFile        = apierrors.ErrMissingFile
)
