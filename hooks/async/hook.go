// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/lexcache"
//	"github.com/unkn0wn-root/lexcache/hooks/async"
//	"github.com/unkn0wn-root/lexcache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    RejectedEvery: 100, // sample logs: ~every 100th rejected word
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := lexcache.New(lexcache.Options{
//	    Source: src,
//	    Store:  store,
//	    Hooks:  hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/lexcache"
)

type Hooks struct {
	inner lexcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ lexcache.Hooks = (*Hooks)(nil)

func New(inner lexcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) RebuildStarted(src string)   { h.try(func() { h.inner.RebuildStarted(src) }) }
func (h *Hooks) StaleDetected(reason string) { h.try(func() { h.inner.StaleDetected(reason) }) }
func (h *Hooks) SnapshotCorrupt(reason string) {
	h.try(func() { h.inner.SnapshotCorrupt(reason) })
}
func (h *Hooks) WordRejected(word string) { h.try(func() { h.inner.WordRejected(word) }) }
func (h *Hooks) RebuildFinished(src string, words, lengths int) {
	h.try(func() { h.inner.RebuildFinished(src, words, lengths) })
}
