// Package erase implements the multi-pass destructive overwrite of single
// files. Each pass fully replaces the file content and is forced durable to
// storage before the next pass starts, so a crash between passes leaves at
// worst the previous, less-recoverable pass on disk.
package erase

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// letters is the alphabet for the random-fill pass.
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// fillPattern is the fixed 12-byte pattern for the third pass.
	fillPattern = "hello world "
)

// fileSystem defines the filesystem operations the engine needs.
// This is a consumer-defined interface.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFileSync(path string, content []byte) error
}

// Notify receives a human-readable description of each pass before it runs.
// A nil Notify is valid and disables step reporting.
type Notify func(step string)

// Engine performs the four-pass overwrite on one file at a time.
type Engine struct {
	fs     fileSystem
	logger *zap.Logger
}

// NewEngine creates an Engine with injected dependencies.
func NewEngine(fs fileSystem, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{fs: fs, logger: logger}
}

// Erase destructively overwrites the content of one file:
//
//	pass 1: truncate to the first 90% of the original content
//	pass 2: fill with random ASCII letters
//	pass 3: fill with "hello world " repeated
//	pass 4: truncate to zero bytes
//
// Empty files are reported as already erased without any writes. All
// failures are converted to an Outcome; Erase never panics and never
// attempts a retry or rollback.
func (e *Engine) Erase(path string, notify Notify) Outcome {
	name := filepath.Base(path)

	if _, err := e.fs.Stat(path); err != nil {
		e.logger.Warn("file not found", zap.String("path", path))
		return e.fail(path, 0, err)
	}

	content, err := e.fs.ReadFile(path)
	if err != nil {
		return e.fail(path, 0, err)
	}

	size := len(content)
	if size == 0 {
		e.logger.Info("file is empty, skipping", zap.String("path", path))
		return Outcome{Path: path, Status: StatusSkipped}
	}

	// Pass sizes shrink and patterns differ per pass, so each pass rewrites
	// the whole file instead of patching in place.
	kept := size * 9 / 10

	emit(notify, fmt.Sprintf("Step 1/4: Removing 10%% of content from %s", name))
	if err := e.fs.WriteFileSync(path, content[:kept]); err != nil {
		return e.fail(path, 1, err)
	}
	e.logger.Info("pass 1 complete: removed 10%", zap.String("path", path), zap.Int("bytes", kept))

	emit(notify, fmt.Sprintf("Step 2/4: Replacing with random letters in %s", name))
	if err := e.fs.WriteFileSync(path, randomLetters(kept)); err != nil {
		return e.fail(path, 2, err)
	}
	e.logger.Info("pass 2 complete: replaced with random letters", zap.String("path", path))

	emit(notify, fmt.Sprintf("Step 3/4: Overwriting with 'hello world' in %s", name))
	if err := e.fs.WriteFileSync(path, repeatPattern(kept)); err != nil {
		return e.fail(path, 3, err)
	}
	e.logger.Info("pass 3 complete: overwrote with fixed pattern", zap.String("path", path))

	emit(notify, fmt.Sprintf("Step 4/4: Clearing content of %s", name))
	if err := e.fs.WriteFileSync(path, nil); err != nil {
		return e.fail(path, 4, err)
	}
	e.logger.Info("pass 4 complete: cleared content", zap.String("path", path))

	e.logger.Info("successfully erased", zap.String("path", path), zap.Int("original_size", size))
	return Outcome{Path: path, Status: StatusErased}
}

func (e *Engine) fail(path string, pass int, cause error) Outcome {
	var err error
	if errors.Is(cause, os.ErrNotExist) {
		err = fmt.Errorf("%w: %s", ErrNotFound, path)
	} else {
		err = &PassError{Path: path, Pass: pass, Cause: cause}
	}

	e.logger.Error("erase failed", zap.String("path", path), zap.Int("pass", pass), zap.Error(cause))
	return Outcome{Path: path, Status: StatusFailed, Err: err}
}

func emit(notify Notify, step string) {
	if notify != nil {
		notify(step)
	}
}

// randomLetters draws n bytes uniformly from the ASCII letter alphabet.
// The source is deliberately non-cryptographic; the pass only needs content
// that differs from the original, not unpredictability.
func randomLetters(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = letters[rand.IntN(len(letters))]
	}
	return out
}

// repeatPattern repeats fillPattern to cover n bytes, truncated to exactly n.
func repeatPattern(n int) []byte {
	return bytes.Repeat([]byte(fillPattern), n/len(fillPattern)+1)[:n]
}
