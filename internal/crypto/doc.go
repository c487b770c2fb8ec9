// Package crypto implements the request signature scheme of the certifier API.
//
// A signature is an HMAC-SHA1 digest of the request payload, keyed by the
// client secret and rendered as lowercase hex behind a "sha1=" prefix:
//
//	sha1=3f786850e387550fdab836ed7e6dc881de23001b
//
// The payload is the exact byte sequence sent on the wire: the JSON encoding
// of the request body, the raw bytes of a certified file, or nothing for
// requests without a body. The service re-derives the digest with the same
// shared secret to authenticate the caller.
//
// Use [Sign] to compute a signature and [Verify] to check one. Verify compares
// digests in constant time.
//
// Keep client secrets out of logs and version control.
package crypto
