package main

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/lexcache"
	zaplog "github.com/unkn0wn-root/lexcache/log/zap"
	"github.com/unkn0wn-root/lexcache/source"
	filestore "github.com/unkn0wn-root/lexcache/store/file"
)

type commandContext struct {
	dictPath  string
	cachePath string
	verbose   bool
}

// openCache wires a file-backed cache from the persistent flags.
// The returned cleanup syncs the logger and closes the cache.
func (c *commandContext) openCache() (lexcache.Cache, func(), error) {
	var zl *zap.Logger
	var err error
	if c.verbose {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}

	cache, err := lexcache.New(lexcache.Options{
		Source: source.File{Path: c.dictPath},
		Store:  filestore.New(c.cachePath),
		Logger: zaplog.ZapLogger{L: zl},
	})
	if err != nil {
		zl.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		zl.Sync()
	}
	return cache, cleanup, nil
}
