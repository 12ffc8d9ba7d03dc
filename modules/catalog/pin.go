package catalog

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const (
	// pinSalt is a fixed application-wide salt. This protects the stored
	// digest against casual viewing of the document, not against a
	// determined attacker with local storage access; the digest must be
	// deterministic across runs so previously stored values keep
	// verifying.
	pinSalt = "anand_salt_2025"

	// MinPinLength is the minimum accepted admin PIN length.
	MinPinLength = 4
)

// PinHasher produces and verifies the one-way digest stored in place of
// the admin PIN.
type PinHasher struct {
	salt string
}

// NewPinHasher creates a PinHasher with the application salt.
func NewPinHasher() *PinHasher {
	return &PinHasher{salt: pinSalt}
}

// Hash returns the hex-encoded SHA-256 digest of pin+salt. Same input,
// same digest.
func (h *PinHasher) Hash(pin string) string {
	sum := sha256.Sum256([]byte(pin + h.salt))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest and compares in constant time. An empty
// stored digest means no PIN is configured and never matches.
func (h *PinHasher) Verify(pin, digest string) bool {
	if digest == "" {
		return false
	}
	computed := h.Hash(pin)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
