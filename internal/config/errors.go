package config

import (
	"errors"
	"fmt"
)

// Errors returned by declaration-file operations.
var (
	// ErrUnknownFormat indicates a file extension no loader handles.
	ErrUnknownFormat = errors.New("unknown declaration file format")
)

// ParseError reports a failure to load or parse a declaration file.
type ParseError struct {
	// Path is the file that failed.
	Path string

	// Message describes the failure.
	Message string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
