package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Cyclone1070/eraser/internal/batch"
	"github.com/Cyclone1070/eraser/internal/config"
	"github.com/Cyclone1070/eraser/internal/erase"
	"github.com/Cyclone1070/eraser/internal/ui"
	"go.uber.org/zap"
)

// confirmPrompt is shown before every batch. Erasure is irreversible, so
// the batch never starts without an explicit yes.
const confirmPrompt = "Erase %d file(s)?\nThis overwrites all content and cannot be undone."

// resolver expands the configured targets into concrete file paths.
type resolver interface {
	Resolve(targets []string) []string
}

// configStore persists the erase list between sessions.
type configStore interface {
	Save(cfg *config.Config) error
}

// app translates UI commands into erase-list edits and batch runs. All
// handlers run on the single command-loop goroutine; only the active
// runner is shared with the batch goroutine, guarded by mu.
type app struct {
	cfg      *config.Config
	loader   configStore
	ui       ui.UserInterface
	logger   *zap.Logger
	resolver resolver
	engine   *erase.Engine

	mu     sync.Mutex
	runner *batch.Runner
}

func newApp(cfg *config.Config, loader configStore, userInterface ui.UserInterface, logger *zap.Logger, res resolver, engine *erase.Engine) *app {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &app{
		cfg:      cfg,
		loader:   loader,
		ui:       userInterface,
		logger:   logger,
		resolver: res,
		engine:   engine,
	}
}

func (a *app) handle(ctx context.Context, cmd ui.Command) {
	switch cmd.Type {
	case ui.CommandAddFile:
		a.addTarget(cmd, false)
	case ui.CommandAddFolder:
		a.addTarget(cmd, true)
	case ui.CommandListTargets:
		a.listTargets()
	case ui.CommandClearTargets:
		a.clearTargets()
	case ui.CommandStart:
		a.start(ctx)
	case ui.CommandStop:
		a.stop()
	default:
		a.ui.WriteMessage(fmt.Sprintf("Unknown command: %s", cmd.Type))
	}
}

func (a *app) addTarget(cmd ui.Command, folder bool) {
	var args ui.AddTargetArgs
	if err := cmd.DecodeArgs(&args); err != nil || args.Path == "" {
		a.ui.WriteMessage("Usage: /add <path> or /adddir <path>")
		return
	}

	path, err := filepath.Abs(args.Path)
	if err != nil {
		a.ui.WriteMessage(fmt.Sprintf("Invalid path %q: %v", args.Path, err))
		return
	}

	// Existence is not checked here. Paths may appear later, and missing
	// ones surface as skips at resolve time.
	kind := "file"
	if folder {
		a.cfg.AddFolder(path)
		kind = "folder"
	} else {
		a.cfg.AddFile(path)
	}

	a.saveConfig()
	a.logger.Info("target added", zap.String("kind", kind), zap.String("path", path))
	a.ui.WriteMessage(fmt.Sprintf("Added %s: %s", kind, path))
}

func (a *app) listTargets() {
	if len(a.cfg.Targets.Files) == 0 && len(a.cfg.Targets.Folders) == 0 {
		a.ui.WriteMessage("Erase list is empty. Use /add or /adddir to add targets.")
		return
	}

	a.ui.WriteMessage("Erase list:")
	for _, path := range a.cfg.Targets.Files {
		a.ui.WriteMessage(fmt.Sprintf("  [file]   %s", path))
	}
	for _, path := range a.cfg.Targets.Folders {
		a.ui.WriteMessage(fmt.Sprintf("  [folder] %s", path))
	}
}

func (a *app) clearTargets() {
	a.cfg.ClearTargets()
	a.saveConfig()
	a.logger.Info("erase list cleared")
	a.ui.WriteMessage("Erase list cleared.")
}

func (a *app) start(ctx context.Context) {
	a.mu.Lock()
	if a.runner != nil && a.runner.State() == batch.StateRunning {
		a.mu.Unlock()
		a.ui.WriteMessage("A batch is already running. Use /stop to cancel it.")
		return
	}
	a.mu.Unlock()

	targets := a.cfg.AllTargets()
	if len(targets) == 0 {
		a.ui.WriteMessage("Erase list is empty. Use /add or /adddir to add targets.")
		return
	}

	files := a.resolver.Resolve(targets)
	if len(files) == 0 {
		a.ui.WriteMessage("No files to erase. All targets are missing or empty folders.")
		return
	}

	confirmed, err := a.ui.ReadConfirm(ctx, fmt.Sprintf(confirmPrompt, len(files)))
	if err != nil {
		return
	}
	if !confirmed {
		a.ui.WriteMessage("Erase cancelled.")
		return
	}

	events := make(chan batch.Event, 64)
	runner := batch.NewRunner(a.engine, events, a.logger)

	a.mu.Lock()
	a.runner = runner
	a.mu.Unlock()

	a.logger.Info("batch started", zap.Int("files", len(files)))
	a.ui.WriteStatus("running", "Erasing...")

	go a.forwardEvents(events)
	go func() {
		// Run owns the events channel; closing it after Run returns lets
		// forwardEvents drain the final DoneEvent and exit.
		if _, err := runner.Run(ctx, files); err != nil {
			a.logger.Error("batch run failed", zap.Error(err))
		}
		close(events)
	}()
}

func (a *app) stop() {
	a.mu.Lock()
	runner := a.runner
	a.mu.Unlock()

	if runner == nil || runner.State() != batch.StateRunning {
		a.ui.WriteMessage("No batch is running.")
		return
	}

	runner.Stop()
	a.ui.WriteStatus("cancelling", "Stopping after current file...")
}

// forwardEvents translates batch events into UI updates. It exits when the
// events channel is closed by the batch goroutine.
func (a *app) forwardEvents(events <-chan batch.Event) {
	for event := range events {
		switch e := event.(type) {
		case batch.FileEvent:
			a.ui.SetProgress(e.Index, e.Total)
			a.ui.WriteStatus("running", fmt.Sprintf("Processing %d/%d", e.Index, e.Total))
		case batch.StepEvent:
			a.ui.WriteMessage(e.Text)
		case batch.DoneEvent:
			a.ui.ClearProgress()
			if e.Cancelled {
				a.ui.WriteStatus("done", "Stopped")
			} else {
				a.ui.WriteStatus("done", "Done")
			}
			a.ui.WriteMessage(fmt.Sprintf("Erase complete: %d succeeded, %d failed", e.Succeeded, e.Failed))
			if e.NotReached > 0 {
				a.ui.WriteMessage(fmt.Sprintf("%d file(s) not reached", e.NotReached))
			}
		}
	}
}

func (a *app) saveConfig() {
	if err := a.loader.Save(a.cfg); err != nil {
		a.logger.Warn("failed to save config", zap.Error(err))
		a.ui.WriteMessage(fmt.Sprintf("Warning: could not save erase list: %v", err))
	}
}
