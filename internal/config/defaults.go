package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero
// values. Missing keys are left at their default values.
type Config struct {
	Targets TargetsConfig `json:"targets"`
	UI      UIConfig      `json:"ui"`
	Logging LoggingConfig `json:"logging"`
}

// TargetsConfig is the persisted erase list.
type TargetsConfig struct {
	Files   []string `json:"files_to_erase"`
	Folders []string `json:"folders_to_erase"`
}

type UIConfig struct {
	// MaxLogLines bounds the log pane history. Default: 500.
	MaxLogLines int `json:"max_log_lines"`
}

type LoggingConfig struct {
	// File is the audit log path. Empty means the default location next to
	// the config file.
	File string `json:"file"`
	// Level is one of debug, info, warn, error. Default: info.
	Level string `json:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Targets: TargetsConfig{
			Files:   []string{},
			Folders: []string{},
		},
		UI: UIConfig{
			MaxLogLines: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// AllTargets returns the combined erase list, file targets first, in the
// order they were added.
func (c *Config) AllTargets() []string {
	targets := make([]string, 0, len(c.Targets.Files)+len(c.Targets.Folders))
	targets = append(targets, c.Targets.Files...)
	targets = append(targets, c.Targets.Folders...)
	return targets
}

// AddFile appends a file target.
func (c *Config) AddFile(path string) {
	c.Targets.Files = append(c.Targets.Files, path)
}

// AddFolder appends a folder target.
func (c *Config) AddFolder(path string) {
	c.Targets.Folders = append(c.Targets.Folders, path)
}

// ClearTargets empties the erase list.
func (c *Config) ClearTargets() {
	c.Targets.Files = []string{}
	c.Targets.Folders = []string{}
}
