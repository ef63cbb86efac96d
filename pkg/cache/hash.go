package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key builds a cache key of the form "kind:sha256(parts...)". Parts are
// joined with a NUL byte so ("ab","c") and ("a","bc") differ.
func Key(kind string, parts ...string) string {
	return kind + ":" + Hash([]byte(strings.Join(parts, "\x00")))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
