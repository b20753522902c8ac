package lexcache

import (
	"context"

	"github.com/unkn0wn-root/lexcache/source"
	"github.com/unkn0wn-root/lexcache/store"
)

// Freshness decides whether the stored snapshot must be rebuilt.
// reason is a short machine-readable tag passed to Hooks.StaleDetected
// ("missing", "outdated", "forced", ...).
type Freshness interface {
	Stale(ctx context.Context, src source.Source, st store.Store) (stale bool, reason string, err error)
}

// ModTime is the default strategy: the snapshot is stale when absent or when
// its modification time is older than the source's.
type ModTime struct{}

func (ModTime) Stale(ctx context.Context, src source.Source, st store.Store) (bool, string, error) {
	mt, ok, err := st.ModTime(ctx)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return true, "missing", nil
	}
	smt, err := src.ModTime(ctx)
	if err != nil {
		return false, "", err
	}
	if mt.Before(smt) {
		return true, "outdated", nil
	}
	return false, "", nil
}

// Always reports the snapshot stale on every check. Useful to force rebuilds.
type Always struct{}

func (Always) Stale(context.Context, source.Source, store.Store) (bool, string, error) {
	return true, "forced", nil
}

// Never trusts whatever snapshot exists and only rebuilds when it is absent.
type Never struct{}

func (Never) Stale(ctx context.Context, _ source.Source, st store.Store) (bool, string, error) {
	_, ok, err := st.ModTime(ctx)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return true, "missing", nil
	}
	return false, "", nil
}
