package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Cyclone1070/eraser/internal/config"
	"github.com/Cyclone1070/eraser/internal/erase"
	"github.com/Cyclone1070/eraser/internal/fsutil"
	"github.com/Cyclone1070/eraser/internal/target"
	"github.com/Cyclone1070/eraser/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockUI records everything the app writes and answers confirmations
// without blocking. done is signalled when a terminal status arrives.
type mockUI struct {
	mu       sync.Mutex
	messages []string
	statuses []string
	confirm  bool
	done     chan struct{}
	doneOnce sync.Once
}

func newMockUI(confirm bool) *mockUI {
	return &mockUI{
		confirm: confirm,
		done:    make(chan struct{}),
	}
}

func (m *mockUI) Start() error { return nil }

func (m *mockUI) Ready() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (m *mockUI) ReadConfirm(ctx context.Context, prompt string) (bool, error) {
	m.mu.Lock()
	m.messages = append(m.messages, "confirm: "+prompt)
	m.mu.Unlock()
	return m.confirm, nil
}

func (m *mockUI) WriteStatus(phase string, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, phase+": "+message)
}

// WriteMessage signals done on the batch summary line, which is the last
// write the event forwarder makes for a run.
func (m *mockUI) WriteMessage(content string) {
	m.mu.Lock()
	m.messages = append(m.messages, content)
	m.mu.Unlock()
	if strings.HasPrefix(content, "Erase complete:") {
		m.doneOnce.Do(func() { close(m.done) })
	}
}

func (m *mockUI) SetProgress(current, total int) {}

func (m *mockUI) ClearProgress() {}

func (m *mockUI) Commands() <-chan ui.Command { return nil }

func (m *mockUI) allMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

func (m *mockUI) hasMessage(substr string) bool {
	for _, msg := range m.allMessages() {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func (m *mockUI) waitDone(t *testing.T) {
	t.Helper()
	select {
	case <-m.done:
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not finish in time")
	}
}

// mockStore is a configStore that remembers the last saved config.
type mockStore struct {
	saved   *config.Config
	saveErr error
}

func (s *mockStore) Save(cfg *config.Config) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = cfg
	return nil
}

func newTestApp(t *testing.T, userInterface ui.UserInterface, store *mockStore) *app {
	t.Helper()
	osFS := fsutil.NewOSFileSystem()
	return newApp(
		config.DefaultConfig(),
		store,
		userInterface,
		zap.NewNop(),
		target.NewResolver(osFS, excluderFactory(osFS), nil),
		erase.NewEngine(osFS, nil),
	)
}

func TestAddFileAndList(t *testing.T) {
	mock := newMockUI(true)
	store := &mockStore{}
	application := newTestApp(t, mock, store)

	application.handle(context.Background(), ui.Command{
		Type: ui.CommandAddFile,
		Args: map[string]string{"path": "/tmp/secret.txt"},
	})

	require.Len(t, application.cfg.Targets.Files, 1)
	assert.Equal(t, "/tmp/secret.txt", application.cfg.Targets.Files[0])
	assert.NotNil(t, store.saved)
	assert.True(t, mock.hasMessage("Added file: /tmp/secret.txt"))

	application.handle(context.Background(), ui.Command{Type: ui.CommandListTargets})
	assert.True(t, mock.hasMessage("[file]   /tmp/secret.txt"))
}

func TestAddFolderMakesPathAbsolute(t *testing.T) {
	mock := newMockUI(true)
	application := newTestApp(t, mock, &mockStore{})

	application.handle(context.Background(), ui.Command{
		Type: ui.CommandAddFolder,
		Args: map[string]string{"path": "relative/dir"},
	})

	require.Len(t, application.cfg.Targets.Folders, 1)
	assert.True(t, filepath.IsAbs(application.cfg.Targets.Folders[0]))
}

func TestAddWithoutPathShowsUsage(t *testing.T) {
	mock := newMockUI(true)
	application := newTestApp(t, mock, &mockStore{})

	application.handle(context.Background(), ui.Command{Type: ui.CommandAddFile})

	assert.Empty(t, application.cfg.Targets.Files)
	assert.True(t, mock.hasMessage("Usage: /add <path>"))
}

func TestClearTargets(t *testing.T) {
	mock := newMockUI(true)
	store := &mockStore{}
	application := newTestApp(t, mock, store)
	application.cfg.AddFile("/tmp/a")
	application.cfg.AddFolder("/tmp/b")

	application.handle(context.Background(), ui.Command{Type: ui.CommandClearTargets})

	assert.Empty(t, application.cfg.AllTargets())
	assert.NotNil(t, store.saved)
	assert.True(t, mock.hasMessage("Erase list cleared."))
}

func TestStartWithEmptyList(t *testing.T) {
	mock := newMockUI(true)
	application := newTestApp(t, mock, &mockStore{})

	application.handle(context.Background(), ui.Command{Type: ui.CommandStart})

	assert.True(t, mock.hasMessage("Erase list is empty"))
}

func TestStartErasesFilesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.txt")
	fileB := filepath.Join(dir, "sub", "b.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(fileB), 0o755))
	require.NoError(t, os.WriteFile(fileA, []byte("top secret contents"), 0o644))
	require.NoError(t, os.WriteFile(fileB, []byte("more secrets"), 0o644))

	mock := newMockUI(true)
	application := newTestApp(t, mock, &mockStore{})
	application.cfg.AddFolder(dir)

	application.handle(context.Background(), ui.Command{Type: ui.CommandStart})
	mock.waitDone(t)

	for _, path := range []string{fileA, fileB} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data, "file should be truncated after the final pass")
	}

	assert.True(t, mock.hasMessage("confirm: Erase 2 file(s)?"))
	assert.True(t, mock.hasMessage("Erase complete: 2 succeeded, 0 failed"))
}

func TestStartDeclinedLeavesFilesIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	mock := newMockUI(false)
	application := newTestApp(t, mock, &mockStore{})
	application.cfg.AddFile(path)

	application.handle(context.Background(), ui.Command{Type: ui.CommandStart})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
	assert.True(t, mock.hasMessage("Erase cancelled."))
}

func TestStartReportsFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	mock := newMockUI(true)
	application := newTestApp(t, mock, &mockStore{})
	application.cfg.AddFile(path)
	// Files vanish between adding and running. The resolver drops them with
	// a warning, so only the present file is counted.
	application.cfg.AddFile(filepath.Join(dir, "gone.txt"))

	application.handle(context.Background(), ui.Command{Type: ui.CommandStart})
	mock.waitDone(t)

	assert.True(t, mock.hasMessage("Erase complete: 1 succeeded, 0 failed"))
}

func TestStopWithoutRunningBatch(t *testing.T) {
	mock := newMockUI(true)
	application := newTestApp(t, mock, &mockStore{})

	application.handle(context.Background(), ui.Command{Type: ui.CommandStop})

	assert.True(t, mock.hasMessage("No batch is running."))
}

func TestSaveFailureWarnsButKeepsTarget(t *testing.T) {
	mock := newMockUI(true)
	store := &mockStore{saveErr: errors.New("disk full")}
	application := newTestApp(t, mock, store)

	application.handle(context.Background(), ui.Command{
		Type: ui.CommandAddFile,
		Args: map[string]string{"path": "/tmp/x"},
	})

	require.Len(t, application.cfg.Targets.Files, 1)
	assert.True(t, mock.hasMessage("could not save erase list"))
}

func TestUnknownCommand(t *testing.T) {
	mock := newMockUI(true)
	application := newTestApp(t, mock, &mockStore{})

	application.handle(context.Background(), ui.Command{Type: "bogus"})

	assert.True(t, mock.hasMessage("Unknown command: bogus"))
}
