package target

import (
	"path/filepath"

	"go.uber.org/zap"
)

// Resolver expands a mixed list of file and folder targets into a flat,
// ordered list of file paths. Missing or inaccessible targets contribute no
// entries; they are reported later as per-file failures if they reappear,
// never as resolution errors. Duplicates are kept as supplied.
type Resolver struct {
	fs          fileSystem
	newExcluder ExcluderFactory
	logger      *zap.Logger
}

// NewResolver creates a Resolver with injected dependencies.
// newExcluder may be nil, in which case folder targets are expanded without
// exclusion filtering.
func NewResolver(fs fileSystem, newExcluder ExcluderFactory, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		fs:          fs,
		newExcluder: newExcluder,
		logger:      logger,
	}
}

// Resolve flattens targets into concrete file paths. File targets contribute
// themselves; folder targets contribute every descendant file, depth-first.
// Symlinks and special files are not filtered; whatever the traversal yields
// as a non-directory entry is kept and left for the erase engine to judge.
func (r *Resolver) Resolve(targets []string) []string {
	var files []string

	for _, path := range targets {
		info, err := r.fs.Stat(path)
		if err != nil {
			r.logger.Warn("skipping unresolvable target", zap.String("path", path), zap.Error(err))
			continue
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		excluder := r.excluderFor(path)
		files = append(files, r.collect(path, path, excluder)...)
	}

	return files
}

// collect recursively gathers all descendant files of dir.
// root is the folder target the exclusion patterns are relative to.
func (r *Resolver) collect(root, dir string, excluder Excluder) []string {
	entries, err := r.fs.ListDir(dir)
	if err != nil {
		r.logger.Warn("skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	var files []string
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		rel, err := filepath.Rel(root, entryPath)
		if err != nil {
			rel = entry.Name()
		}

		if excluder != nil && excluder.ShouldExclude(filepath.ToSlash(rel), entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			files = append(files, r.collect(root, entryPath, excluder)...)
			continue
		}

		files = append(files, entryPath)
	}

	return files
}

func (r *Resolver) excluderFor(root string) Excluder {
	if r.newExcluder == nil {
		return nil
	}
	excluder, err := r.newExcluder(root)
	if err != nil {
		r.logger.Warn("exclusion rules unavailable, expanding everything",
			zap.String("path", root), zap.Error(err))
		return nil
	}
	return excluder
}
