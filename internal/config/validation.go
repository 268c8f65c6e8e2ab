package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.UI.MaxLogLines < 1 {
		errs = append(errs, "ui.max_log_lines must be >= 1")
	}

	if !validLogLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level))
	}

	for i, path := range c.Targets.Files {
		if path == "" {
			errs = append(errs, fmt.Sprintf("targets.files_to_erase[%d] must not be empty", i))
		}
	}
	for i, path := range c.Targets.Folders {
		if path == "" {
			errs = append(errs, fmt.Sprintf("targets.folders_to_erase[%d] must not be empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
