package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashClientKey returns a filesystem-safe identifier for a caller identity.
func HashClientKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
