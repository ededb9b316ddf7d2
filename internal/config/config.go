package config

import (
	"fmt"
)

// Config holds all editkit settings.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	History HistoryConfig `toml:"history"`
	Store   StoreConfig   `toml:"store"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `toml:"level"`
	// Prefix is prepended to all log messages.
	Prefix string `toml:"prefix"`
}

// HistoryConfig configures undo/redo behavior.
type HistoryConfig struct {
	// MaxEntries limits the undo stack depth. Oldest entries are
	// evicted beyond the limit.
	MaxEntries int `toml:"max_entries"`
	// MergeEnabled controls whether consecutive word-text commands
	// coalesce into one undo step. Off means one entry per command.
	MergeEnabled bool `toml:"merge_enabled"`
}

// StoreConfig configures text storage.
type StoreConfig struct {
	// InitialCapacity is the starting rune capacity of new documents.
	InitialCapacity int `toml:"initial_capacity"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Prefix: "editkit",
		},
		History: HistoryConfig{
			MaxEntries:   1000,
			MergeEnabled: true,
		},
		Store: StoreConfig{
			InitialCapacity: 128,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history.max_entries %d", ErrInvalidValue, c.History.MaxEntries)
	}
	if c.Store.InitialCapacity < 0 {
		return fmt.Errorf("%w: store.initial_capacity %d", ErrInvalidValue, c.Store.InitialCapacity)
	}
	return nil
}
