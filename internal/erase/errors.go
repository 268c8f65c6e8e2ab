package erase

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned in an Outcome when the target file vanished or was
// never present at erase time.
var ErrNotFound = errors.New("file does not exist")

// PassError is returned in an Outcome when a read, write, or sync failed
// during one of the overwrite passes.
type PassError struct {
	Path  string
	Pass  int // 0 for the initial content read
	Cause error
}

func (e *PassError) Error() string {
	if e.Pass == 0 {
		return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("pass %d failed for %s: %v", e.Pass, e.Path, e.Cause)
}

func (e *PassError) Unwrap() error {
	return e.Cause
}
