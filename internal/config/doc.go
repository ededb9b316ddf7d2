// Package config defines editkit's configuration: defaults, TOML file
// loading, environment variable overrides, and validation. A Watcher is
// available for reloading when the config file changes on disk.
package config
