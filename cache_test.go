package lexcache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/unkn0wn-root/lexcache/source"
	st "github.com/unkn0wn-root/lexcache/store"
)

type memStore struct {
	data    []byte
	present bool
	mod     time.Time

	saves    int
	failSave error
}

var _ st.Store = (*memStore)(nil)

func (m *memStore) Load(context.Context) ([]byte, bool, error) {
	if !m.present {
		return nil, false, nil
	}
	return m.data, true, nil
}

func (m *memStore) Save(_ context.Context, data []byte) error {
	if m.failSave != nil {
		return m.failSave
	}
	m.data = append([]byte(nil), data...)
	m.present = true
	m.mod = time.Now()
	m.saves++
	return nil
}

func (m *memStore) ModTime(context.Context) (time.Time, bool, error) {
	if !m.present {
		return time.Time{}, false, nil
	}
	return m.mod, true, nil
}

func (m *memStore) Remove(context.Context) error {
	m.data, m.present = nil, false
	return nil
}

func (m *memStore) Close(context.Context) error { return nil }

type recHooks struct {
	started  int
	finished int
	stale    []string
	corrupt  []string
	rejected []string
}

var _ Hooks = (*recHooks)(nil)

func (h *recHooks) RebuildStarted(string)            { h.started++ }
func (h *recHooks) RebuildFinished(string, int, int) { h.finished++ }
func (h *recHooks) StaleDetected(reason string)      { h.stale = append(h.stale, reason) }
func (h *recHooks) SnapshotCorrupt(reason string)    { h.corrupt = append(h.corrupt, reason) }
func (h *recHooks) WordRejected(word string)         { h.rejected = append(h.rejected, word) }

type errSource struct{ err error }

var _ source.Source = errSource{}

func (s errSource) Open(context.Context) (io.ReadCloser, error) { return nil, s.err }
func (s errSource) ModTime(context.Context) (time.Time, error) { return time.Time{}, nil }
func (s errSource) Name() string                               { return "<err>" }

func newTestCache(t *testing.T, dict string, optsOpt func(*Options)) (Cache, *memStore, *recHooks) {
	t.Helper()
	ms := &memStore{}
	hooks := &recHooks{}
	opts := Options{
		Source: source.Bytes{Label: "test-dict", Data: []byte(dict), Mod: time.Now().Add(-time.Hour)},
		Store:  ms,
		Hooks:  hooks,
	}
	if optsOpt != nil {
		optsOpt(&opts)
	}
	c, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, ms, hooks
}

func sameWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestWordsBuildsAndFilters covers the pipeline end to end: lowercase merge,
// dedupe, invalid-line exclusion, and sorted output.
func TestWordsBuildsAndFilters(t *testing.T) {
	ctx := context.Background()
	c, ms, hooks := newTestCache(t, "cat\ndog\nant\nCat\na1b\n", nil)
	defer c.Close(ctx)

	got, err := c.Words(ctx, 3)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if want := []string{"ant", "cat", "dog"}; !sameWords(got, want) {
		t.Fatalf("Words(3) = %v, want %v", got, want)
	}
	if ms.saves != 1 {
		t.Fatalf("expected exactly one build, got %d", ms.saves)
	}
	if hooks.started != 1 || hooks.finished != 1 {
		t.Fatalf("rebuild hooks: started=%d finished=%d", hooks.started, hooks.finished)
	}
	if len(hooks.stale) != 1 || hooks.stale[0] != "missing" {
		t.Fatalf("stale reasons = %v, want [missing]", hooks.stale)
	}
	if len(hooks.rejected) != 1 || hooks.rejected[0] != "a1b" {
		t.Fatalf("rejected words = %v, want [a1b]", hooks.rejected)
	}
}

// TestWordsAbsentLength: a length with no words is an empty result, not an error.
func TestWordsAbsentLength(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCache(t, "cat\ndog\n", nil)
	defer c.Close(ctx)

	got, err := c.Words(ctx, 50)
	if err != nil {
		t.Fatalf("Words(50): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Words(50) = %v, want empty", got)
	}
}

// TestWordsLengthExact: every returned word has exactly the requested length.
func TestWordsLengthExact(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCache(t, "a\nbb\nccc\ndddd\nbb\nzz\n", nil)
	defer c.Close(ctx)

	for _, n := range []int{1, 2, 3, 4} {
		ws, err := c.Words(ctx, n)
		if err != nil {
			t.Fatalf("Words(%d): %v", n, err)
		}
		for _, w := range ws {
			if len(w) != n {
				t.Fatalf("Words(%d) returned %q", n, w)
			}
		}
	}
}

func TestLengths(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCache(t, "dddd\na\nccc\nbb\n", nil)
	defer c.Close(ctx)

	got, err := c.Lengths(ctx)
	if err != nil {
		t.Fatalf("Lengths: %v", err)
	}
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Lengths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lengths = %v, want %v", got, want)
		}
	}
}

// TestRebuildIdempotent: two builds over an unchanged source serialize
// identically.
func TestRebuildIdempotent(t *testing.T) {
	ctx := context.Background()
	c, ms, _ := newTestCache(t, "pear\nplum\nfig\npear\n", nil)
	defer c.Close(ctx)

	if err := c.Rebuild(ctx); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	first := append([]byte(nil), ms.data...)
	if err := c.Rebuild(ctx); err != nil {
		t.Fatalf("Rebuild (2nd): %v", err)
	}
	if !bytes.Equal(first, ms.data) {
		t.Fatalf("rebuild output differs between runs")
	}
}

// TestMissingCacheRebuilds: deleting the snapshot makes the next read rebuild
// and still answer correctly.
func TestMissingCacheRebuilds(t *testing.T) {
	ctx := context.Background()
	c, ms, _ := newTestCache(t, "cat\ndog\n", nil)
	defer c.Close(ctx)

	if _, err := c.Words(ctx, 3); err != nil {
		t.Fatalf("Words: %v", err)
	}
	if err := ms.Remove(ctx); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got, err := c.Words(ctx, 3)
	if err != nil {
		t.Fatalf("Words after remove: %v", err)
	}
	if !sameWords(got, []string{"cat", "dog"}) {
		t.Fatalf("Words after remove = %v", got)
	}
	if ms.saves != 2 {
		t.Fatalf("expected rebuild after removal, saves=%d", ms.saves)
	}
}

// TestOutdatedCacheRebuilds: a snapshot older than the source is rebuilt
// before answering.
func TestOutdatedCacheRebuilds(t *testing.T) {
	ctx := context.Background()
	src := source.Bytes{Label: "dict", Data: []byte("cat\n"), Mod: time.Now().Add(-time.Hour)}
	ms := &memStore{}
	hooks := &recHooks{}
	c, err := New(Options{Source: src, Store: ms, Hooks: hooks})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close(ctx)

	if _, err := c.Words(ctx, 3); err != nil {
		t.Fatalf("Words: %v", err)
	}
	// age the snapshot behind the source
	ms.mod = src.Mod.Add(-time.Minute)

	stale, err := c.Stale(ctx)
	if err != nil || !stale {
		t.Fatalf("Stale = (%v, %v), want (true, nil)", stale, err)
	}
	if _, err := c.Words(ctx, 3); err != nil {
		t.Fatalf("Words after aging: %v", err)
	}
	if ms.saves != 2 {
		t.Fatalf("expected rebuild for outdated snapshot, saves=%d", ms.saves)
	}
	if len(hooks.stale) != 2 || hooks.stale[1] != "outdated" {
		t.Fatalf("stale reasons = %v, want [missing outdated]", hooks.stale)
	}
}

// TestFreshCacheSkipsRebuild: repeated reads over an unchanged source build
// exactly once.
func TestFreshCacheSkipsRebuild(t *testing.T) {
	ctx := context.Background()
	c, ms, _ := newTestCache(t, "cat\n", nil)
	defer c.Close(ctx)

	for i := 0; i < 3; i++ {
		if _, err := c.Words(ctx, 3); err != nil {
			t.Fatalf("Words #%d: %v", i, err)
		}
	}
	if ms.saves != 1 {
		t.Fatalf("fresh cache rebuilt, saves=%d", ms.saves)
	}
}

// TestBuildErrorPropagates: an unreadable source surfaces a typed error from
// Rebuild (and from Words).
func TestBuildErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	ms := &memStore{}
	c, err := New(Options{Source: errSource{err: boom}, Store: ms})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close(ctx)

	err = c.Rebuild(ctx)
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("Rebuild error = %v, want *BuildError", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("BuildError does not wrap cause: %v", err)
	}
	if be.ReadErr == nil || be.WriteErr != nil {
		t.Fatalf("unexpected cause split: read=%v write=%v", be.ReadErr, be.WriteErr)
	}
	if _, err := c.Words(ctx, 3); err == nil {
		t.Fatalf("Words should propagate the build failure")
	}
}

// TestSaveErrorPropagates: an unwritable store fails the build fast.
func TestSaveErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	c, ms, _ := newTestCache(t, "cat\n", nil)
	defer c.Close(ctx)
	ms.failSave = boom

	err := c.Rebuild(ctx)
	var be *BuildError
	if !errors.As(err, &be) || !errors.Is(err, boom) {
		t.Fatalf("Rebuild error = %v, want *BuildError wrapping %v", err, boom)
	}
	if be.WriteErr == nil {
		t.Fatalf("expected WriteErr set, got %+v", be)
	}
}

// TestCorruptSnapshot: undecodable stored bytes surface an error and fire the
// corruption hook.
func TestCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	c, ms, hooks := newTestCache(t, "cat\n", nil)
	defer c.Close(ctx)

	ms.data = []byte("{not json")
	ms.present = true
	ms.mod = time.Now() // fresher than the source: no rebuild masks the corruption

	if _, err := c.Words(ctx, 3); err == nil {
		t.Fatalf("Words over corrupt snapshot should error")
	}
	if len(hooks.corrupt) != 1 || hooks.corrupt[0] != "decode_error" {
		t.Fatalf("corrupt hooks = %v, want [decode_error]", hooks.corrupt)
	}
}

func TestOptionsValidation(t *testing.T) {
	if _, err := New(Options{Store: &memStore{}}); err == nil {
		t.Fatalf("New without source should fail")
	}
	if _, err := New(Options{Source: source.Bytes{}}); err == nil {
		t.Fatalf("New without store should fail")
	}
}

// TestFreshnessStrategies exercises the injectable strategy seam.
func TestFreshnessStrategies(t *testing.T) {
	ctx := context.Background()

	c, ms, _ := newTestCache(t, "cat\n", func(o *Options) { o.Freshness = Always{} })
	defer c.Close(ctx)
	for i := 0; i < 2; i++ {
		if _, err := c.Words(ctx, 3); err != nil {
			t.Fatalf("Words: %v", err)
		}
	}
	if ms.saves != 2 {
		t.Fatalf("Always should rebuild on every read, saves=%d", ms.saves)
	}

	c2, ms2, _ := newTestCache(t, "cat\n", func(o *Options) { o.Freshness = Never{} })
	defer c2.Close(ctx)
	if _, err := c2.Words(ctx, 3); err != nil {
		t.Fatalf("Words: %v", err)
	}
	ms2.mod = time.Time{} // ancient snapshot; Never must not care
	if _, err := c2.Words(ctx, 3); err != nil {
		t.Fatalf("Words: %v", err)
	}
	if ms2.saves != 1 {
		t.Fatalf("Never rebuilt an existing snapshot, saves=%d", ms2.saves)
	}
}
