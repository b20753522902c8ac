// Package file persists the snapshot as a single file on disk - the default
// store and the one matching the original cache-file behavior.
package file

import (
	"context"
	"os"
	"path/filepath"
	"time"

	st "github.com/unkn0wn-root/lexcache/store"
)

type Store struct {
	path string
}

var _ st.Store = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file location.
func (s *Store) Path() string { return s.path }

func (s *Store) Load(_ context.Context) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers never observe a half-written snapshot.
func (s *Store) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (s *Store) ModTime(_ context.Context) (time.Time, bool, error) {
	fi, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return fi.ModTime(), true, nil
}

func (s *Store) Remove(_ context.Context) error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) Close(_ context.Context) error { return nil }
