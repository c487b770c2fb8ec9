package crypto

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is the scheme the service verifies.
	"encoding/hex"
	"strings"
)

// Digest returns the raw HMAC-SHA1 of payload keyed by secret.
func Digest(secret string, payload []byte) []byte {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}

// Sign returns the signature header value for payload.
func Sign(secret string, payload []byte) string {
	return SignaturePrefix + hex.EncodeToString(Digest(secret, payload))
}

// Verify checks that signature was produced by Sign for the same secret and payload.
func Verify(secret string, payload []byte, signature string) error {
	encoded, ok := strings.CutPrefix(signature, SignaturePrefix)
	if !ok {
		return ErrMalformedSignature
	}
	got, err := hex.DecodeString(encoded)
	if err != nil || len(got) != DigestSize {
		return ErrMalformedSignature
	}
	if !hmac.Equal(got, Digest(secret, payload)) {
		return ErrSignatureMismatch
	}
	return nil
}
