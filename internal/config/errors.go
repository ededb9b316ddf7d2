package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidLogLevel indicates an unrecognized logging level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidValue indicates a setting outside its valid range.
	ErrInvalidValue = errors.New("invalid config value")

	// ErrWatcherClosed indicates use of a watcher after Close.
	ErrWatcherClosed = errors.New("config watcher closed")
)

// ParseError describes a failure to parse a configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
