// Package source abstracts the dictionary input: a plaintext word list,
// one word per line, UTF-8 encoded. Sources are read-only collaborators;
// only the cache builder consumes them.
package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"
)

// Source is a readable word list with a modification time for freshness
// comparison.
type Source interface {
	// Open returns a reader over the dictionary. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// ModTime returns when the dictionary last changed.
	ModTime(ctx context.Context) (time.Time, error)
	// Name identifies the source in logs and errors.
	Name() string
}

// File reads the dictionary from a filesystem path.
type File struct {
	Path string
}

var _ Source = File{}

func (f File) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

func (f File) ModTime(_ context.Context) (time.Time, error) {
	fi, err := os.Stat(f.Path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

func (f File) Name() string { return f.Path }

// Bytes serves an in-memory dictionary. Handy for tests and embedded lists.
type Bytes struct {
	Label string
	Data  []byte
	Mod   time.Time
}

var _ Source = Bytes{}

func (b Bytes) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.Data)), nil
}

func (b Bytes) ModTime(_ context.Context) (time.Time, error) {
	return b.Mod, nil
}

func (b Bytes) Name() string {
	if b.Label == "" {
		return "<bytes>"
	}
	return b.Label
}
