// Package ristretto keeps the snapshot in a dgraph-io/ristretto cache.
// Ephemeral: a restart (or eviction under pressure) drops the snapshot and
// the next read rebuilds it from the dictionary.
package ristretto

import (
	"context"
	"errors"
	"sync"
	"time"

	rc "github.com/dgraph-io/ristretto"

	st "github.com/unkn0wn-root/lexcache/store"
)

const snapshotKey = "lexcache:snapshot"

type Store struct {
	c *rc.Cache

	mu  sync.RWMutex
	mod time.Time
}

var _ st.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Load(_ context.Context) ([]byte, bool, error) {
	v, ok := s.c.Get(snapshotKey)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// drop unexpected entry shape
		s.c.Del(snapshotKey)
		return nil, false, nil
	}
	return b, true, nil
}

func (s *Store) Save(_ context.Context, data []byte) error {
	if !s.c.Set(snapshotKey, data, int64(len(data))) {
		return errors.New("ristretto: snapshot rejected")
	}
	// Set is async; Wait makes the write visible to an immediate Load.
	s.c.Wait()
	s.mu.Lock()
	s.mod = time.Now()
	s.mu.Unlock()
	return nil
}

func (s *Store) ModTime(_ context.Context) (time.Time, bool, error) {
	if _, ok := s.c.Get(snapshotKey); !ok {
		return time.Time{}, false, nil
	}
	s.mu.RLock()
	mod := s.mod
	s.mu.RUnlock()
	return mod, true, nil
}

func (s *Store) Remove(_ context.Context) error {
	s.c.Del(snapshotKey)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}
