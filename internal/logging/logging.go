// Package logging builds the audit logger. Erase passes are destructive and
// unattended, so every pass and outcome is journaled to a file; stdout
// belongs to the TUI and gets no log output.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/eraser/internal/config"
	"go.uber.org/zap"
)

// LogFile is the audit log file name.
const LogFile = "eraser.log"

// DefaultLogFile returns the default audit log location,
// ~/.config/eraser/eraser.log, next to the config file.
func DefaultLogFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", config.ConfigDir, LogFile), nil
}

// DefaultZapConfig returns a standard zap.Config writing JSON to path.
func DefaultZapConfig(path string) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg
}

// New builds the audit logger from configuration. An empty cfg.File selects
// the default location; the parent directory is created if missing.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	path := cfg.File
	if path == "" {
		var err error
		path, err = DefaultLogFile()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve log file location: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := DefaultZapConfig(path)
	zapCfg.Level = level
	return zapCfg.Build()
}
