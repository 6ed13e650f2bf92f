package model

import (
	"errors"
	"fmt"
)

// ExitCode defines the CLI exit codes. These codes allow scripts and CI
// systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidMesh indicates the input mesh cannot be sliced
	// (no triangles, or a zero-height bounding box).
	ExitInvalidMesh ExitCode = 2

	// ExitInvalidParameter indicates a slicing parameter was out of
	// range (e.g. a non-positive layer height).
	ExitInvalidParameter ExitCode = 3

	// ExitIO indicates the input mesh could not be read or the output
	// sink could not be written.
	ExitIO ExitCode = 4
)

// InvalidMeshError reports a mesh that cannot be sliced: either it has
// no triangles at all, or all of its geometry sits at a single height
// so there is nothing to sweep.
type InvalidMeshError struct {
	// Reason is a human-readable description of what is wrong.
	Reason string
}

// Error satisfies the error interface.
func (e *InvalidMeshError) Error() string {
	return fmt.Sprintf("invalid mesh: %s", e.Reason)
}

// InvalidParameterError reports a slicing parameter outside its valid
// range.
type InvalidParameterError struct {
	// Name is the parameter name as the user knows it (e.g. "layer-height").
	Name string

	// Value is the rejected value.
	Value float64

	// Constraint describes the valid range (e.g. "must be > 0").
	Constraint string
}

// Error satisfies the error interface.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Constraint)
}

// IoError wraps a failure to read the input mesh or write the output
// stream. It carries the operation and path for error messages and the
// underlying error for errors.Is/errors.As inspection.
type IoError struct {
	// Op is the high-level operation that failed ("read", "write", "close").
	Op string

	// Path is the file involved.
	Path string

	// Err is the underlying error from the OS or codec.
	Err error
}

// Error satisfies the error interface.
func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *IoError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error to the exit code the process should return.
// Unrecognized errors map to ExitGeneralError; nil maps to ExitSuccess.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var meshErr *InvalidMeshError
	if errors.As(err, &meshErr) {
		return ExitInvalidMesh
	}
	var paramErr *InvalidParameterError
	if errors.As(err, &paramErr) {
		return ExitInvalidParameter
	}
	var ioErr *IoError
	if errors.As(err, &ioErr) {
		return ExitIO
	}
	return ExitGeneralError
}
