package lexcache

import (
	"context"

	cd "github.com/unkn0wn-root/lexcache/codec"
	"github.com/unkn0wn-root/lexcache/source"
	"github.com/unkn0wn-root/lexcache/store"
	"github.com/unkn0wn-root/lexcache/wordlist"
)

// Cache is the high-level API over a persisted length->words snapshot.
// All operations are synchronous; a rebuild triggered by Words or EnsureFresh
// completes before the call returns.
type Cache interface {
	// Words returns the words of exactly length n, sorted ascending.
	// The snapshot is rebuilt first when stale or missing. A length with no
	// words yields an empty slice and a nil error.
	Words(ctx context.Context, n int) ([]string, error)

	// Lengths returns the word lengths present in the snapshot, sorted
	// ascending. Rebuilds first when stale or missing.
	Lengths(ctx context.Context) ([]int, error)

	// Rebuild scans the source and overwrites the stored snapshot wholesale,
	// regardless of freshness. All-or-nothing: on error the previous snapshot
	// is left as-is and the error is returned.
	Rebuild(ctx context.Context) error

	// EnsureFresh rebuilds only when the freshness strategy reports the
	// snapshot stale.
	EnsureFresh(ctx context.Context) error

	// Stale reports whether the snapshot would be rebuilt by EnsureFresh.
	Stale(ctx context.Context) (bool, error)

	Close(ctx context.Context) error
}

// Options tune the cache. Source and Store are required; everything else has
// a sensible default.
type Options struct {
	// Required
	Source source.Source
	Store  store.Store

	Codec     cd.Codec[wordlist.Snapshot] // nil => codec.JSON (indented, string keys)
	Logger    Logger                      // nil => NopLogger
	Hooks     Hooks                       // nil => NopHooks
	Freshness Freshness                   // nil => ModTime comparison
}

func New(opts Options) (Cache, error) {
	return newCache(opts)
}
