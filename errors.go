package lexcache

import (
	"fmt"
)

// BuildError reports a failed rebuild. ReadErr covers the dictionary side
// (open or scan), WriteErr the snapshot side (encode or store).
type BuildError struct {
	Source   string
	ReadErr  error
	WriteErr error
}

func (e *BuildError) Error() string {
	switch {
	case e.ReadErr != nil && e.WriteErr != nil:
		return fmt.Sprintf("build from %q failed: read=%v; write=%v", e.Source, e.ReadErr, e.WriteErr)
	case e.ReadErr != nil:
		return fmt.Sprintf("build from %q: reading dictionary failed: %v", e.Source, e.ReadErr)
	case e.WriteErr != nil:
		return fmt.Sprintf("build from %q: writing snapshot failed: %v", e.Source, e.WriteErr)
	default:
		return fmt.Sprintf("build from %q: unknown error", e.Source)
	}
}

func (e *BuildError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.ReadErr != nil {
		errs = append(errs, e.ReadErr)
	}
	if e.WriteErr != nil {
		errs = append(errs, e.WriteErr)
	}
	return errs
}
