// Package lexcache builds and serves a length-indexed word cache derived from
// a plaintext dictionary. Dictionary lines are trimmed, lowercased and
// validated (ASCII a-z only); surviving words are grouped by length with
// duplicates merged, and the sorted grouping is persisted through a pluggable
// Store so later lookups skip the dictionary scan.
//
// Components:
//   - source.Source: the dictionary input (a file, or raw bytes in tests).
//   - store.Store: byte store for the encoded snapshot. Filesystem by default;
//     Ristretto, BigCache and Redis backends are available.
//   - codec.Codec[V]: (de)serializes the snapshot <-> []byte. JSON by default,
//     matching the cache-file shape of the original tooling.
//   - Freshness: staleness strategy. The default compares the snapshot's
//     modification time against the source's.
//
// Typical use:
//
//	c, _ := lexcache.New(lexcache.Options{
//	    Source: source.File{Path: "words.txt"},
//	    Store:  filestore.New("word_cache.json"),
//	})
//	fives, err := c.Words(ctx, 5) // rebuilds first if stale or missing
package lexcache
