// Package cache stores converted drawings between runs.
//
// Converting SVG to PDF or PNG shells out to rsvg-convert and dominates the
// run time for large batches. The pipeline keys each converted artifact by
// the hash of the SVG it came from plus the conversion options, so an
// unchanged drawing is never converted twice.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a directory, used by the CLI
//   - [NullCache]: stores nothing, used with --no-cache and in tests
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes its inputs with SHA-256;
// [ScopedKeyer] prefixes another keyer so that entries written by different
// builds do not collide.
package cache

import (
	"context"
	"time"
)

// DefaultArtifactTTL is how long converted artifacts are kept.
const DefaultArtifactTTL = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
