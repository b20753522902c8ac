package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/lexcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all. A dictionary with many
	// non-word lines fires WordRejected once per line during a rebuild.
	RejectedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectedCtr atomic.Uint64
}

var _ lexcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) RebuildStarted(source string) {
	if h.l == nil {
		return
	}
	h.l.Info("lexcache.rebuild_started",
		"source", source)
}

func (h *Hooks) RebuildFinished(source string, words, lengths int) {
	if h.l == nil {
		return
	}
	h.l.Info("lexcache.rebuild_finished",
		"source", source,
		"words", words,
		"lengths", lengths)
}

func (h *Hooks) StaleDetected(reason string) {
	if h.l == nil {
		return
	}
	h.l.Info("lexcache.stale_detected",
		"reason", reason)
}

func (h *Hooks) SnapshotCorrupt(reason string) {
	if h.l == nil {
		return
	}
	h.l.Warn("lexcache.snapshot_corrupt",
		"reason", reason)
}

func (h *Hooks) WordRejected(word string) {
	if h.l == nil || !sample(h.opts.RejectedEvery, &h.rejectedCtr) {
		return
	}
	h.l.Debug("lexcache.word_rejected",
		"word", word)
}
