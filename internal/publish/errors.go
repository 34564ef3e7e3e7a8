package publish

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no candidate exists anywhere in the search order
	ErrNotFound = errors.New("build result not found")

	// ErrRelativeRoot means the search root was not an absolute path
	ErrRelativeRoot = errors.New("search root must be absolute")
)

// ProbeError is a candidate check that failed for a reason other than absence
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
