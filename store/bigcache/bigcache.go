// Package bigcache keeps the snapshot in an allegro/bigcache instance.
// Ephemeral like the ristretto store; entries age out with the LifeWindow.
package bigcache

import (
	"context"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	st "github.com/unkn0wn-root/lexcache/store"
)

const snapshotKey = "lexcache:snapshot"

type Store struct {
	c *bc.BigCache

	mu  sync.RWMutex
	mod time.Time
}

var _ st.Store = (*Store)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Store, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Load(_ context.Context) ([]byte, bool, error) {
	b, err := s.c.Get(snapshotKey)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (s *Store) Save(_ context.Context, data []byte) error {
	if err := s.c.Set(snapshotKey, data); err != nil {
		return err
	}
	s.mu.Lock()
	s.mod = time.Now()
	s.mu.Unlock()
	return nil
}

func (s *Store) ModTime(_ context.Context) (time.Time, bool, error) {
	if _, err := s.c.Get(snapshotKey); err != nil {
		if err == bc.ErrEntryNotFound {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	s.mu.RLock()
	mod := s.mod
	s.mu.RUnlock()
	return mod, true, nil
}

func (s *Store) Remove(_ context.Context) error {
	err := s.c.Delete(snapshotKey)
	if err == bc.ErrEntryNotFound {
		return nil
	}
	return err
}

func (s *Store) Close(_ context.Context) error {
	return s.c.Close()
}
