// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grouperr

import (
	"errors"
	"fmt"
)

// Kind classifies a group failure. The set is closed: new kinds are a
// wire-visible change, since the Display prefixes appear in relay and
// client logs.
//
// Kind implements error so that a bare kind can be used as an
// errors.Is target.
type Kind int

const (
	// InvalidGroupID: the group id is empty or contains a character
	// outside [a-z0-9_-].
	InvalidGroupID Kind = iota + 1

	// InvalidPrivacy: a privacy token other than "public" or "private".
	InvalidPrivacy

	// InvalidAccessModel: an access-model token other than "open" or
	// "closed".
	InvalidAccessModel

	// MissingRequiredTag: an event lacks a tag the caller needs (the
	// group-scoping "h" or "d" tag).
	MissingRequiredTag

	// InvalidGroupIdentifier: a combined "<relay>'<id>" string has the
	// wrong number of delimiters, or its relay portion is not a URL.
	InvalidGroupIdentifier
)

var kindPrefixes = map[Kind]string{
	InvalidGroupID:         "invalid group ID",
	InvalidPrivacy:         "invalid privacy value",
	InvalidAccessModel:     "invalid access model value",
	MissingRequiredTag:     "missing required tag",
	InvalidGroupIdentifier: "invalid group identifier format",
}

var kindNames = map[Kind]string{
	InvalidGroupID:         "InvalidGroupId",
	InvalidPrivacy:         "InvalidPrivacy",
	InvalidAccessModel:     "InvalidAccessModel",
	MissingRequiredTag:     "MissingRequiredTag",
	InvalidGroupIdentifier: "InvalidGroupIdentifier",
}

// String returns the kind's stable name (e.g., "InvalidGroupId").
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error returns the kind's Display prefix, so a bare Kind reads the
// same as an Error with an empty message.
func (k Kind) Error() string {
	if prefix, ok := kindPrefixes[k]; ok {
		return prefix
	}
	return k.String()
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		InvalidGroupID,
		InvalidPrivacy,
		InvalidAccessModel,
		MissingRequiredTag,
		InvalidGroupIdentifier,
	}
}

// Error is a classified group failure. Message carries the detail
// (the offending token, the missing tag name); Err is an optional
// underlying cause such as a URL parser error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error renders "<kind prefix>: <message>", followed by ": <cause>"
// when a cause is attached.
func (e *Error) Error() string {
	text := e.Kind.Error()
	if e.Message != "" {
		text += ": " + e.Message
	}
	if e.Err != nil {
		text += ": " + e.Err.Error()
	}
	return text
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is this error's Kind, or another *Error
// of the same Kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// New returns an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error of the given kind wrapping cause. A nil cause
// is equivalent to New.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0 if
// there is none.
func KindOf(err error) Kind {
	var groupError *Error
	if errors.As(err, &groupError) {
		return groupError.Kind
	}
	return 0
}
