// Package redis persists the snapshot in Redis so several consumers (or
// restarts) share one build. The save instant is kept in a sibling key since
// Redis exposes no per-key write timestamp.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	st "github.com/unkn0wn-root/lexcache/store"
)

var ErrNilClient = errors.New("redis store: nil client")

const defaultKey = "lexcache:snapshot"

type Store struct {
	rdb         goredis.UniversalClient
	key         string
	modKey      string
	closeClient bool
}

var _ st.Store = (*Store)(nil)

type Config struct {
	Client      goredis.UniversalClient
	Key         string // "" => "lexcache:snapshot"
	CloseClient bool   // set true only if this store exclusively owns the client
}

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	key := cfg.Key
	if key == "" {
		key = defaultKey
	}
	return &Store{
		rdb:         cfg.Client,
		key:         key,
		modKey:      key + ":mod",
		closeClient: cfg.CloseClient,
	}, nil
}

func (s *Store) Load(ctx context.Context) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	now := strconv.FormatInt(time.Now().UnixNano(), 10)
	_, err := s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Set(ctx, s.key, data, 0)
		p.Set(ctx, s.modKey, now, 0)
		return nil
	})
	return err
}

func (s *Store) ModTime(ctx context.Context) (time.Time, bool, error) {
	v, err := s.rdb.Get(ctx, s.modKey).Result()
	if err == goredis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	ns, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		// foreign write under our key; treat as absent so the next read rebuilds
		return time.Time{}, false, nil
	}
	return time.Unix(0, ns), true, nil
}

func (s *Store) Remove(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key, s.modKey).Err()
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
