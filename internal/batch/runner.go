// Package batch drives the erase engine over an ordered list of files,
// one file at a time, reporting progress through an events channel and
// honoring cooperative cancellation between files.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/Cyclone1070/eraser/internal/erase"
	"go.uber.org/zap"
)

// ErrNotIdle is returned when Run is called on a Runner that has already
// been started. A Runner drives exactly one batch; create a fresh one per
// run.
var ErrNotIdle = errors.New("runner has already been started")

// eraser is the engine contract the runner drives.
type eraser interface {
	Erase(path string, notify erase.Notify) erase.Outcome
}

// State is the runner lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result aggregates one batch run. Succeeded + Failed + NotReached always
// equals the number of files the run was given.
type Result struct {
	Succeeded  int
	Failed     int
	NotReached int
	Cancelled  bool
}

// Runner executes one batch of erasures sequentially. It performs no I/O
// itself; all file access happens inside the injected engine. The
// cancellation flag is the only state shared with the caller's goroutine.
type Runner struct {
	eraser eraser
	events chan<- Event
	logger *zap.Logger

	cancelled atomic.Bool

	mu    sync.Mutex
	state State
}

// NewRunner creates a Runner. events may be nil to disable progress
// reporting.
func NewRunner(eraser eraser, events chan<- Event, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		eraser: eraser,
		events: events,
		logger: logger,
		state:  StateIdle,
	}
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Stop requests cancellation. The file currently being erased always
// finishes all its passes; no later file is started. Stop is safe to call
// from any goroutine and is a no-op after the first call.
func (r *Runner) Stop() {
	r.cancelled.Store(true)
}

// Run processes files in order, invoking the engine per file and forwarding
// its step notifications. It blocks until the batch reaches a terminal
// state; callers wanting a responsive front end run it on its own goroutine.
// A DoneEvent with the final counts is emitted exactly once, after the last
// per-file event.
func (r *Runner) Run(ctx context.Context, files []string) (Result, error) {
	r.mu.Lock()
	if r.state != StateIdle {
		r.mu.Unlock()
		return Result{}, ErrNotIdle
	}
	r.state = StateRunning
	r.mu.Unlock()

	var res Result
	total := len(files)

	defer func() {
		r.send(DoneEvent{
			Succeeded:  res.Succeeded,
			Failed:     res.Failed,
			NotReached: res.NotReached,
			Cancelled:  res.Cancelled,
		})
	}()

	for i, path := range files {
		// Cancellation granularity is between files only.
		if r.cancelled.Load() || ctx.Err() != nil {
			res.Cancelled = true
			res.NotReached = total - i
			r.send(StepEvent{Text: "Erasing stopped by user"})
			r.logger.Info("batch cancelled",
				zap.Int("processed", i), zap.Int("not_reached", res.NotReached))
			break
		}

		r.send(FileEvent{Index: i + 1, Total: total, Path: path})
		r.send(StepEvent{Text: fmt.Sprintf("Processing file %d/%d: %s", i+1, total, filepath.Base(path))})

		outcome := r.eraser.Erase(path, func(step string) {
			r.send(StepEvent{Text: step})
		})
		if outcome.Succeeded() {
			res.Succeeded++
		} else {
			res.Failed++
		}
	}

	r.mu.Lock()
	if res.Cancelled {
		r.state = StateCancelled
	} else {
		r.state = StateCompleted
	}
	r.mu.Unlock()

	r.logger.Info("batch finished",
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", res.Failed),
		zap.Int("not_reached", res.NotReached),
		zap.Bool("cancelled", res.Cancelled))
	return res, nil
}

func (r *Runner) send(event Event) {
	if r.events != nil {
		r.events <- event
	}
}
