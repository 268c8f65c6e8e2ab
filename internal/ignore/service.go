package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreFile is the per-directory exclusion file consulted when a folder
// target is expanded. It uses gitignore pattern syntax.
const IgnoreFile = ".eraserignore"

// ReadError is returned when an exclusion file exists but cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }

// FileSystem defines the minimal filesystem interface needed for the
// exclusion service. This is a consumer-defined interface.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Service implements exclusion pattern matching using go-git's gitignore
// matcher over a .eraserignore file at the root of a folder target.
type Service struct {
	matcher gitignore.Matcher
}

// NewService creates an exclusion service by loading .eraserignore from root.
// Returns a service that never excludes if the file doesn't exist (no error).
func NewService(root string, fs FileSystem) (*Service, error) {
	path := filepath.Join(root, IgnoreFile)

	if _, err := fs.Stat(path); err != nil {
		return &Service{matcher: nil}, nil
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return &Service{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldExclude checks if a path relative to the folder target matches any
// exclusion patterns. Returns false if no .eraserignore was loaded.
func (s *Service) ShouldExclude(relativePath string, isDir bool) bool {
	if s.matcher == nil {
		return false
	}
	return s.matcher.Match(splitPath(relativePath), isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}

	return segments
}

// NoOpService is an exclusion service that never excludes any files.
// It is used when exclusion loading fails or is disabled.
type NoOpService struct{}

// ShouldExclude always returns false for NoOpService.
func (s *NoOpService) ShouldExclude(relativePath string, isDir bool) bool {
	return false
}
