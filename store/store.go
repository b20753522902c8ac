// Package store defines the snapshot storage abstraction used by lexcache.
//
// Implementations MUST be byte-for-byte transparent: Load must return exactly
// the same []byte that was previously passed to Save (no prepended/appended
// metadata, no re-encoding, no mutation). If a store performs internal
// transforms (e.g., compression), they MUST be fully reversed so that the
// bytes returned by Load are identical to the bytes provided to Save.
package store

import (
	"context"
	"time"
)

// Store holds a single encoded snapshot alongside its modification time.
// Saves replace the snapshot wholesale. Must be safe for concurrent use.
type Store interface {
	// Load returns (data, true, nil) when a snapshot is present;
	// (nil, false, nil) when absent. IO/remote errors return (nil, false, err).
	Load(ctx context.Context) ([]byte, bool, error)

	// Save overwrites the snapshot. The modification time observable through
	// ModTime must be at least the instant of the Save.
	Save(ctx context.Context, data []byte) error

	// ModTime returns when the snapshot was last saved; ok=false when absent.
	ModTime(ctx context.Context) (mod time.Time, ok bool, err error)

	// Remove deletes the snapshot (best-effort; absent is not an error).
	Remove(ctx context.Context) error

	// Close releases resources.
	Close(ctx context.Context) error
}
