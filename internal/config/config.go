// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTaskFile = "tasks.md"

	// ProjectConfigFile is looked up in the working directory.
	ProjectConfigFile = ".smallt.toml"
)

// Config holds the full configuration for smallt.
type Config struct {
	// TaskFile is the Markdown checklist in the working directory.
	TaskFile string `toml:"task_file"`

	// NoColor disables the blue theme.
	NoColor bool `toml:"no_color"`

	// ConfirmDestructive gates commands that drop the whole list behind
	// a y/N prompt.
	ConfirmDestructive bool `toml:"confirm_destructive"`

	// LogFile enables file logging when non-empty. The interactive shell
	// owns the terminal, so logs never go to stdout or stderr.
	LogFile string `toml:"log_file"`
}

// Load builds configuration in priority order:
//  1. Defaults
//  2. Project config file (.smallt.toml in dir)
//  3. Environment variables
//
// CLI flags override on top of the result; the caller applies them.
func Load(dir string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	path := filepath.Join(dir, ProjectConfigFile)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.TaskFile = DefaultTaskFile
	cfg.ConfirmDestructive = true
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("SMALLT_TASK_FILE"); v != "" {
		cfg.TaskFile = v
	}
	if v := os.Getenv("SMALLT_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v, ok := envBool("SMALLT_NO_COLOR"); ok {
		cfg.NoColor = v
	}
	if v, ok := envBool("SMALLT_CONFIRM_DESTRUCTIVE"); ok {
		cfg.ConfirmDestructive = v
	}
}

func envBool(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
