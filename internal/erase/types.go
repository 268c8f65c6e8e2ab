package erase

// Status classifies the result of erasing one file.
type Status int

const (
	// StatusErased means all four passes completed and the file is empty.
	StatusErased Status = iota
	// StatusSkipped means the file was already empty; nothing was written.
	StatusSkipped
	// StatusFailed means a pass could not complete. The file is left in
	// whatever state the failing pass produced; no rollback is attempted.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusErased:
		return "erased"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the per-file result of an erase attempt.
// Err is nil unless Status is StatusFailed.
type Outcome struct {
	Path   string
	Status Status
	Err    error
}

// Succeeded reports whether the file counts as successfully erased.
// Skipped empty files count as success.
func (o Outcome) Succeeded() bool {
	return o.Status != StatusFailed
}
