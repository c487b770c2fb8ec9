package crypto

import "errors"

var (
	// ErrMalformedSignature is returned when a signature lacks the sha1= prefix
	// or its digest is not DigestSize bytes of hex.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrSignatureMismatch is returned when a signature does not match the payload.
	ErrSignatureMismatch = errors.New("signature mismatch")
)
