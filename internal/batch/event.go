package batch

// Event is the interface for all batch progress events.
// Consumers handle events via type switch.
type Event interface {
	isEvent()
}

// FileEvent is emitted before a file's passes begin.
// Index is 1-based.
type FileEvent struct {
	Index int
	Total int
	Path  string
}

func (FileEvent) isEvent() {}

// StepEvent carries a human-readable progress line, one per pass per file
// plus one "Processing file i/total" line per file.
type StepEvent struct {
	Text string
}

func (StepEvent) isEvent() {}

// DoneEvent is emitted exactly once when the batch reaches a terminal state,
// strictly after every per-file event.
type DoneEvent struct {
	Succeeded  int
	Failed     int
	NotReached int
	Cancelled  bool
}

func (DoneEvent) isEvent() {}
