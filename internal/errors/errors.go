// Package errors provides standardized error handling for hdfscope.
// It defines the error kinds the session controller recovers from, along
// with helper functions for consistent creation, wrapping, and checking.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds. Each kind maps to a distinct recovery target in the
// session controller.
const (
	Unknown ErrorKind = iota
	// DirectoryNotFound: the scan directory does not exist or is not a directory
	DirectoryNotFound
	// FileUnreadable: the store could not be opened or traversal hit an I/O error
	FileUnreadable
	// PathNotFound: the dataset path is absent from the file hierarchy
	PathNotFound
	// InvalidPathType: the dataset path is empty or otherwise not a path
	InvalidPathType
	// InvalidSelection: user input that is not a number or out of range
	InvalidSelection
	// VisualizationFailure: the visualization collaborator failed to render
	VisualizationFailure
	// InvalidConfig: the configuration file could not be parsed
	InvalidConfig
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// StoreError represents errors raised by the hierarchical store: a missing
// directory, an unreadable file, or a dataset path that cannot be resolved.
type StoreError struct {
	ApplicationError
	path string
}

// NewStoreError creates a new store error. path is the file or dataset
// path the operation was addressing.
func NewStoreError(msg string, path string, kind ErrorKind, err error) *StoreError {
	return &StoreError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the store error message
func (e *StoreError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file or dataset path associated with the error
func (e *StoreError) Path() string {
	return e.path
}

// SelectionError represents rejected user input at a selection prompt.
// It never unwinds session state; the caller re-prompts.
type SelectionError struct {
	ApplicationError
	input string
}

// NewSelectionError creates a new selection error carrying the raw input
func NewSelectionError(msg string, input string, err error) *SelectionError {
	return &SelectionError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidSelection,
		},
		input: input,
	}
}

// Error returns the selection error message
func (e *SelectionError) Error() string {
	if e.input != "" {
		return fmt.Sprintf("%s: %q", e.msg, e.input)
	}
	return e.ApplicationError.Error()
}

// Input returns the raw user input that was rejected
func (e *SelectionError) Input() string {
	return e.input
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidConfig,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewKind creates a new error with an explicit kind
func NewKind(msg string, kind ErrorKind) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context, preserving the
// kind of the wrapped error.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: KindOf(err),
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: KindOf(err),
	}
}

// kinder is implemented by every error type in this package
type kinder interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first kinded error in err's chain,
// or Unknown if none is found.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinder); ok {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsDirectoryNotFound checks if the error is a missing-directory error
func IsDirectoryNotFound(err error) bool {
	return KindOf(err) == DirectoryNotFound
}

// IsFileUnreadable checks if the error is an unreadable-file error
func IsFileUnreadable(err error) bool {
	return KindOf(err) == FileUnreadable
}

// IsPathNotFound checks if the error is a missing-dataset-path error
func IsPathNotFound(err error) bool {
	return KindOf(err) == PathNotFound
}

// IsInvalidPathType checks if the error is an invalid-path error
func IsInvalidPathType(err error) bool {
	return KindOf(err) == InvalidPathType
}

// IsInvalidSelection checks if the error is a rejected-input error
func IsInvalidSelection(err error) bool {
	return KindOf(err) == InvalidSelection
}

// IsVisualizationFailure checks if the error came from the visualization step
func IsVisualizationFailure(err error) bool {
	return KindOf(err) == VisualizationFailure
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return KindOf(err) == InvalidConfig
}
