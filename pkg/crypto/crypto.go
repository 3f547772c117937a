package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const fingerprintSize = 8

// Fingerprint returns a short stable hex digest of s (16 chars, BLAKE2b).
// Lookup keys have no length bound, so logs carry this instead of the key.
func Fingerprint(s string) string {
	if s == "" {
		return ""
	}
	h, err := blake2b.New(fingerprintSize, nil)
	if err != nil {
		// Only reachable with an invalid size or key length.
		panic(err)
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
