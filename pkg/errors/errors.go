// Package errors provides custom error types for the taxmerge system.
// These errors enable programmatic error checking and keep the input-error
// versus data-gap distinction explicit: malformed or incomplete inputs
// abort a run before any output is written, while per-row absences are
// ordinary data handled by the reconciliation rules.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the taxmerge system
var (
	// ErrNotFound indicates that a requested file or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumn indicates a required column is absent from an input table
	ErrMissingColumn = errors.New("missing column")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// MissingColumnError reports a required column absent from an input table.
type MissingColumnError struct {
	File   string
	Column string
}

// Error implements the error interface
func (e *MissingColumnError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("required column %q not found in %s", e.Column, e.File)
	}
	return fmt.Sprintf("required column %q not found", e.Column)
}

// Is implements errors.Is support
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// NewMissingColumnError creates a new MissingColumnError
func NewMissingColumnError(file, column string) *MissingColumnError {
	return &MissingColumnError{File: file, Column: column}
}

// ParseError reports a malformed record in an input file.
type ParseError struct {
	File string
	Line int
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IOError reports a failed file operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMissingColumn checks if an error reports a missing required column
func IsMissingColumn(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}
