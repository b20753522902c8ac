package lexcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; WordRejected in particular
// fires once per invalid dictionary line during a rebuild.
type Hooks interface {
	// A rebuild began for the named source.
	RebuildStarted(source string)

	// A rebuild completed: unique words kept, distinct lengths present.
	RebuildFinished(source string, words, lengths int)

	// The freshness strategy requested a rebuild.
	// reason ∈ {"missing", "outdated", "forced"}
	StaleDetected(reason string)

	// The stored snapshot could not be used on read.
	// reason ∈ {"missing", "decode_error"}
	SnapshotCorrupt(reason string)

	// A non-empty dictionary line failed validation (after trim+lowercase).
	WordRejected(word string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) RebuildStarted(string)            {}
func (NopHooks) RebuildFinished(string, int, int) {}
func (NopHooks) StaleDetected(string)             {}
func (NopHooks) SnapshotCorrupt(string)           {}
func (NopHooks) WordRejected(string)              {}
