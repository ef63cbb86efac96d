// Package cache stores rendered artifacts keyed by a hash of their input.
//
// The HTTP service renders Graphviz PNGs on demand. Rendering is slow
// compared to serving bytes, so results are cached under [Key] of the DOT
// source. Three backends implement [Cache]:
//
//   - [FileCache]: one file per entry under the user cache directory
//   - [RedisCache]: shared across service instances
//   - [NullCache]: caching disabled
//
// [Observed] wraps any backend and reports hits, misses and writes to the
// registered observability cache hooks.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultDir returns the graphsketch cache directory, honouring
// XDG_CACHE_HOME.
func DefaultDir() string {
	dir := os.Getenv("XDG_CACHE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".cache")
	}
	return filepath.Join(dir, "graphsketch")
}
