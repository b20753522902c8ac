package lexcache

import (
	"bufio"
	"context"
	"fmt"

	cd "github.com/unkn0wn-root/lexcache/codec"
	"github.com/unkn0wn-root/lexcache/source"
	"github.com/unkn0wn-root/lexcache/store"
	"github.com/unkn0wn-root/lexcache/wordlist"
)

type cache struct {
	src   source.Source
	st    store.Store
	codec cd.Codec[wordlist.Snapshot]
	log   Logger
	hooks Hooks
	fresh Freshness
}

func newCache(opts Options) (*cache, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("lexcache: source is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("lexcache: store is required")
	}

	c := &cache{
		src: opts.Source,
		st:  opts.Store,
	}

	// defaults
	if opts.Codec != nil {
		c.codec = opts.Codec
	} else {
		c.codec = cd.JSON[wordlist.Snapshot]{}
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.fresh = coalesce[Freshness](opts.Freshness, ModTime{})

	return c, nil
}

func (c *cache) Close(ctx context.Context) error {
	return c.st.Close(ctx)
}

func (c *cache) Rebuild(ctx context.Context) error {
	name := c.src.Name()
	c.hooks.RebuildStarted(name)
	c.log.Info("building word cache", Fields{"source": name})

	r, err := c.src.Open(ctx)
	if err != nil {
		return c.fail(&BuildError{Source: name, ReadErr: err})
	}
	defer r.Close()

	b := wordlist.NewBuilder()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := b.Add(sc.Text()); !ok && w != "" {
			c.hooks.WordRejected(w)
		}
	}
	if err := sc.Err(); err != nil {
		return c.fail(&BuildError{Source: name, ReadErr: err})
	}

	snap := b.Snapshot()
	raw, err := c.codec.Encode(snap)
	if err != nil {
		return c.fail(&BuildError{Source: name, WriteErr: err})
	}
	if err := c.st.Save(ctx, raw); err != nil {
		return c.fail(&BuildError{Source: name, WriteErr: err})
	}

	words := 0
	for _, ws := range snap {
		words += len(ws)
	}
	c.hooks.RebuildFinished(name, words, len(snap))
	c.log.Info("word cache saved", Fields{"source": name, "words": words, "lengths": len(snap)})
	return nil
}

func (c *cache) Stale(ctx context.Context) (bool, error) {
	stale, _, err := c.fresh.Stale(ctx, c.src, c.st)
	return stale, err
}

func (c *cache) EnsureFresh(ctx context.Context) error {
	stale, reason, err := c.fresh.Stale(ctx, c.src, c.st)
	if err != nil {
		c.log.Error("freshness check failed", Fields{"source": c.src.Name(), "err": err})
		return err
	}
	if !stale {
		return nil
	}
	c.hooks.StaleDetected(reason)
	c.log.Info("word cache stale", Fields{"reason": reason})
	return c.Rebuild(ctx)
}

func (c *cache) Words(ctx context.Context, n int) ([]string, error) {
	snap, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap[n], nil
}

func (c *cache) Lengths(ctx context.Context) ([]int, error) {
	snap, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Lengths(), nil
}

func (c *cache) snapshot(ctx context.Context) (wordlist.Snapshot, error) {
	if err := c.EnsureFresh(ctx); err != nil {
		return nil, err
	}
	raw, ok, err := c.st.Load(ctx)
	if err != nil {
		c.log.Error("cache load failed", Fields{"err": err})
		return nil, err
	}
	if !ok {
		// freshly rebuilt yet gone; store lost the write
		c.hooks.SnapshotCorrupt("missing")
		err := fmt.Errorf("lexcache: snapshot missing after freshness check")
		c.log.Error("cache load failed", Fields{"err": err})
		return nil, err
	}
	snap, err := c.codec.Decode(raw)
	if err != nil {
		c.hooks.SnapshotCorrupt("decode_error")
		c.log.Error("cache decode failed", Fields{"err": err})
		return nil, fmt.Errorf("lexcache: decode snapshot: %w", err)
	}
	return snap, nil
}

func (c *cache) fail(err *BuildError) error {
	c.log.Error("word cache build failed", Fields{"source": err.Source, "err": err})
	return err
}
