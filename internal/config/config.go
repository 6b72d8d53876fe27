// Package config loads cmd/abwconvert's batch configuration from a TOML
// file, the teacher's own configuration format.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is cmd/abwconvert's on-disk configuration. The core abw package
// takes no configuration of its own; everything here is batch-CLI
// concern (output location, concurrency, persisted state paths).
type Config struct {
	// OutputDir is where converted output is written, one file per input
	// named after the input's base name with ".trace" appended.
	OutputDir string `toml:"output_dir"`

	// Concurrency bounds how many files are converted at once. Zero or
	// negative sets no limit, so every file is converted concurrently.
	Concurrency int `toml:"concurrency"`

	// CachePath is the sqlite3 database internal/cache uses to persist
	// pass-one results across runs.
	CachePath string `toml:"cache_path"`

	// HistoryPath is the sqlite3 database internal/history appends
	// conversion attempts to.
	HistoryPath string `toml:"history_path"`

	// LogLevel is parsed with logrus.ParseLevel; empty defaults to Info.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputDir:   ".",
		Concurrency: 4,
		CachePath:   "abwconvert-cache.db",
		HistoryPath: "abwconvert-history.db",
		LogLevel:    "info",
	}
}

// Load decodes a TOML file at path over Default(), so a config file only
// needs to name the fields it wants to override.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
