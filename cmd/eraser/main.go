// Package main provides a terminal interface for the eraser tool.
// It maintains a persisted erase list and destructively overwrites the
// listed files in a background batch with live progress reporting.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/Cyclone1070/eraser/internal/config"
	"github.com/Cyclone1070/eraser/internal/erase"
	"github.com/Cyclone1070/eraser/internal/fsutil"
	"github.com/Cyclone1070/eraser/internal/ignore"
	"github.com/Cyclone1070/eraser/internal/logging"
	"github.com/Cyclone1070/eraser/internal/target"
	"github.com/Cyclone1070/eraser/internal/ui"
	uiservice "github.com/Cyclone1070/eraser/internal/ui/service"
	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config *config.Config
	Loader *config.Loader
	Logger *zap.Logger
	UI     ui.UserInterface
}

func createRealUI(cfg *config.Config) ui.UserInterface {
	channels := ui.NewUIChannels()
	renderer := uiservice.NewGlamourRenderer()
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(cfg, channels, renderer, spinnerFactory)
}

func excluderFactory(fs *fsutil.OSFileSystem) target.ExcluderFactory {
	return func(root string) (target.Excluder, error) {
		return ignore.NewService(root, fs)
	}
}

func main() {
	// Load configuration (from defaults + ~/.config/eraser/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	// The audit log is best effort; a dead log never blocks erasing.
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open audit log: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	deps := Dependencies{
		Config: cfg,
		Loader: config.NewLoader(),
		Logger: logger,
		UI:     createRealUI(cfg),
	}

	// Run interactive mode (blocks until exit). The UI manages its own
	// lifecycle via Ctrl+C, so context.Background() is intentional here.
	runInteractive(context.Background(), deps)
}

func runInteractive(ctx context.Context, deps Dependencies) {
	userInterface := deps.UI

	// Create cancellable context for goroutines
	appCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	osFS := fsutil.NewOSFileSystem()
	application := newApp(
		deps.Config,
		deps.Loader,
		userInterface,
		deps.Logger,
		target.NewResolver(osFS, excluderFactory(osFS), deps.Logger),
		erase.NewEngine(osFS, deps.Logger),
	)

	// Command handler (with cancellation)
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready() // Wait for UI to be ready

		userInterface.WriteStatus("ready", "Ready")
		userInterface.WriteMessage(fmt.Sprintf("Erase list: %d file(s), %d folder(s). Type /help for commands.",
			len(deps.Config.Targets.Files), len(deps.Config.Targets.Folders)))

		for {
			select {
			case <-appCtx.Done():
				return
			case cmd := <-userInterface.Commands():
				application.handle(appCtx, cmd)
			}
		}
	}()

	// Run UI in main thread (blocks until exit)
	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	// UI exited, trigger shutdown
	cancel()

	// Wait for goroutines to finish
	wg.Wait()
}
