package token

import (
	"crypto/sha256"
	"encoding/hex"
)

// computeDigest hashes source text for use as a code-cache key component.
// SHA-256 from crypto/sha256 is sufficient for content-addressing here.
func computeDigest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
