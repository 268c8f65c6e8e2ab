package fsutil

import (
	"io"
	"os"
)

// syncWriteCloser defines the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type syncWriteCloser interface {
	io.Writer
	Sync() error
	Close() error
}

// OSFileSystem implements filesystem operations using the local OS filesystem
// primitives. It uses internal function fields to enable testability via
// functional injection.
type OSFileSystem struct {
	openWrite func(name string) (syncWriteCloser, error)
	mkdirAll  func(path string, perm os.FileMode) error
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		openWrite: func(name string) (syncWriteCloser, error) {
			return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		},
		mkdirAll: os.MkdirAll,
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (r *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadFile reads the entire content of a file.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileSync replaces the content of path with content and forces the
// write durable to storage before returning. The file is truncated in place
// rather than replaced via temp-file rename, so the write lands on the same
// inode as the data it is overwriting.
func (r *OSFileSystem) WriteFileSync(path string, content []byte) error {
	file, err := r.openWrite(path)
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return &WriteError{Path: path, Cause: err}
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return &SyncError{Path: path, Cause: err}
	}

	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	return nil
}

// EnsureDirs creates parent directories recursively if they don't exist.
func (r *OSFileSystem) EnsureDirs(path string) error {
	return r.mkdirAll(path, 0o755)
}

// UserHomeDir returns the current user's home directory.
func (r *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ListDir lists the contents of a directory.
// Returns a slice of FileInfo for each entry in the directory.
func (r *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}
