package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "EDITKIT_"

// Load builds the effective configuration: defaults, overlaid with the
// TOML file at path (if it exists), overlaid with EDITKIT_* environment
// variables, then validated. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile overlays settings from a TOML file onto cfg. A missing file
// is not an error; the defaults stand.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// applyEnv overlays EDITKIT_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_PREFIX"); ok {
		cfg.Logging.Prefix = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_MAX_ENTRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sHISTORY_MAX_ENTRIES: %w", EnvPrefix, err)
		}
		cfg.History.MaxEntries = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_MERGE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sHISTORY_MERGE: %w", EnvPrefix, err)
		}
		cfg.History.MergeEnabled = b
	}
	if v, ok := os.LookupEnv(EnvPrefix + "STORE_CAPACITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sSTORE_CAPACITY: %w", EnvPrefix, err)
		}
		cfg.Store.InitialCapacity = n
	}
	return nil
}
