package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := New(filepath.Join(t.TempDir(), "cache.json"))

	if _, ok, err := s.Load(ctx); err != nil || ok {
		t.Fatalf("Load on empty store: ok=%v err=%v", ok, err)
	}
	if _, ok, err := s.ModTime(ctx); err != nil || ok {
		t.Fatalf("ModTime on empty store: ok=%v err=%v", ok, err)
	}

	want := []byte(`{"3":["cat"]}`)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load(ctx)
	if err != nil || !ok || !bytes.Equal(got, want) {
		t.Fatalf("Load: ok=%v err=%v got=%q", ok, err, got)
	}
	if _, ok, err := s.ModTime(ctx); err != nil || !ok {
		t.Fatalf("ModTime after save: ok=%v err=%v", ok, err)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := New(filepath.Join(dir, "cache.json"))

	if err := s.Save(ctx, []byte("first snapshot, longer than the second")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("Save (2nd): %v", err)
	}
	got, _, err := s.Load(ctx)
	if err != nil || string(got) != "second" {
		t.Fatalf("Load = %q, %v", got, err)
	}

	// the tmp+rename overwrite must not leave temp files behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("leftover files in store dir: %v", entries)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := New(filepath.Join(t.TempDir(), "cache.json"))

	if err := s.Remove(ctx); err != nil {
		t.Fatalf("Remove on absent snapshot: %v", err)
	}
	if err := s.Save(ctx, []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Remove(ctx); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Load(ctx); ok {
		t.Fatalf("snapshot present after Remove")
	}
}
