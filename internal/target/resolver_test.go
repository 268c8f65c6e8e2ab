package target

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Cyclone1070/eraser/internal/fsutil"
	"github.com/Cyclone1070/eraser/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func realExcluderFactory(fs *fsutil.OSFileSystem) ExcluderFactory {
	return func(root string) (Excluder, error) {
		return ignore.NewService(root, fs)
	}
}

func TestResolve_FileTarget_ContributesItself(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file)

	resolver := NewResolver(fsutil.NewOSFileSystem(), nil, nil)
	files := resolver.Resolve([]string{file})

	assert.Equal(t, []string{file}, files)
}

func TestResolve_MissingTarget_ContributesNothing(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(fsutil.NewOSFileSystem(), nil, nil)
	files := resolver.Resolve([]string{filepath.Join(t.TempDir(), "does-not-exist")})

	assert.Empty(t, files)
}

func TestResolve_FolderTarget_ExpandsRecursively(t *testing.T) {
	t.Parallel()

	// 3 files at the top plus a nested subdirectory with 2 files.
	dir := t.TempDir()
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.txt"),
		filepath.Join(dir, "nested", "d.txt"),
		filepath.Join(dir, "nested", "e.txt"),
	}
	for _, f := range want {
		writeFile(t, f)
	}

	resolver := NewResolver(fsutil.NewOSFileSystem(), nil, nil)
	files := resolver.Resolve([]string{dir})

	sort.Strings(files)
	assert.Equal(t, want, files)
}

func TestResolve_MixedTargets_KeepsOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "solo.txt")
	writeFile(t, file)

	resolver := NewResolver(fsutil.NewOSFileSystem(), nil, nil)
	files := resolver.Resolve([]string{file, file})

	assert.Equal(t, []string{file, file}, files)
}

func TestResolve_EraserignoreFiltersDescendants(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"))
	writeFile(t, filepath.Join(dir, "skip.log"))
	writeFile(t, filepath.Join(dir, "sub", "also-skip.log"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ignore.IgnoreFile), []byte("*.log\n"+ignore.IgnoreFile+"\n"), 0o644))

	osFS := fsutil.NewOSFileSystem()
	resolver := NewResolver(osFS, realExcluderFactory(osFS), nil)
	files := resolver.Resolve([]string{dir})

	assert.Equal(t, []string{filepath.Join(dir, "keep.txt")}, files)
}

func TestResolve_ExcluderFactoryFailure_ExpandsEverything(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))

	factory := func(root string) (Excluder, error) {
		return nil, errors.New("broken")
	}
	resolver := NewResolver(fsutil.NewOSFileSystem(), factory, nil)
	files := resolver.Resolve([]string{dir})

	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, files)
}
