package fsutil

import "fmt"

// WriteError is returned when opening, writing, or closing a file fails.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

func (e *WriteError) IOError() bool {
	return true
}

// SyncError is returned when forcing written data durable fails.
type SyncError struct {
	Path  string
	Cause error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("failed to sync %s: %v", e.Path, e.Cause)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

func (e *SyncError) IOError() bool {
	return true
}
