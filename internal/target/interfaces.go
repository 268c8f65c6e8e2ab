package target

import "os"

// fileSystem defines the filesystem operations the resolver needs.
// This is a consumer-defined interface.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
}

// Excluder reports whether a path relative to a folder target should be
// skipped during expansion.
type Excluder interface {
	ShouldExclude(relativePath string, isDir bool) bool
}

// ExcluderFactory builds the exclusion service for one folder target.
// A factory error falls back to no exclusion for that folder.
type ExcluderFactory func(root string) (Excluder, error)
