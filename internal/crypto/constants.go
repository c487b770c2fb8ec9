package crypto

import "crypto/sha1" //nolint:gosec // HMAC-SHA1 is the scheme the service verifies.

const (
	// SignaturePrefix precedes the hex digest in a signature header value.
	SignaturePrefix = "sha1="

	// DigestSize is the size of an HMAC-SHA1 digest in bytes.
	DigestSize = sha1.Size
)
