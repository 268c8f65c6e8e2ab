package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "eraser"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
}

// ConfigFileStore implements FileSystem using the real OS
type ConfigFileStore struct{}

func (ConfigFileStore) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (ConfigFileStore) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (ConfigFileStore) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Loader handles configuration loading and saving with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileStore{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Path returns the config file location, ~/.config/eraser/config.json.
func (l *Loader) Path() (string, error) {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", ConfigDir, ConfigFile), nil
}

// Load reads configuration from ~/.config/eraser/config.json
// and merges it with defaults. Dotfile values override defaults.
// Returns default config if dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation
// failures.
//
// NOTE: This implementation unmarshals JSON keys directly over the default
// configuration. This allows explicit zero values (e.g., 0, false, "") in
// the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath, err := l.Path()
	if err != nil {
		return cfg, nil // Use defaults if can't get home dir
	}

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if file doesn't exist
		}
		return nil, err // Return error for permission issues
	}

	// Parse JSON directly into the default config struct.
	// This ensures that present keys overwrite defaults (even if zero),
	// while missing keys leave the defaults untouched.
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err // Return error for malformed JSON
	}

	// Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration back to ~/.config/eraser/config.json,
// creating the directory if needed. The erase list is edited interactively,
// so every mutation is persisted immediately.
func (l *Loader) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath, err := l.Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := l.fs.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return err
	}
	return l.fs.WriteFile(configPath, data, 0o600)
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
