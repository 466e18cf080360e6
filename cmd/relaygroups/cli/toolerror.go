// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bureau-foundation/relaygroups/lib/grouperr"
)

// ErrorCategory classifies command errors so scripts can tell bad
// input from missing files from bugs without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// wrong argument count, unparseable identifiers, bad manifest
	// values. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced file does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an unexpected error: I/O failures,
	// encoding failures, bugs.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. It wraps
// an inner error, preserving the chain for errors.Is and errors.As.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

// Error returns the underlying error message. The category is not
// included.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced file does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify wraps err in a ToolError whose category follows from its
// chain: any grouperr kind is a validation error, a missing file is
// not-found, everything else is internal. Errors that are already
// ToolErrors are returned unchanged; nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return err
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return err
	}
	switch {
	case grouperr.KindOf(err) != 0:
		return &ToolError{Category: CategoryValidation, Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return &ToolError{Category: CategoryNotFound, Err: err}
	default:
		return &ToolError{Category: CategoryInternal, Err: err}
	}
}

// ClassifyInput is Classify for errors from reading a user-supplied
// file such as a manifest: a missing file is not-found and any other
// failure is the caller's input at fault, so it is a validation error.
func ClassifyInput(err error) error {
	if err == nil {
		return nil
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return err
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &ToolError{Category: CategoryNotFound, Err: err}
	}
	return &ToolError{Category: CategoryValidation, Err: err}
}

// CategoryOf returns the category of the first ToolError in err's
// chain, or "" when there is none.
func CategoryOf(err error) ErrorCategory {
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return toolError.Category
	}
	return ""
}
