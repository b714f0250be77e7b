// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs provides the scanline engine's error kinds, mirroring the
// base-error-plus-context shape of the wider ecosystem's error-wrapping
// packages but adding a classification [Kind] since callers need to
// distinguish fail-fast construction errors from recoverable ones.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error] per the engine's error taxonomy.
type Kind int

const (
	// InvalidInput marks a null path, subsampling < 1, min_y >= max_y, or
	// a segment endpoint containing NaN/Inf. Fails fast at construction.
	InvalidInput Kind = iota

	// Allocation marks a failure to obtain the scratch buffer.
	Allocation

	// Precondition marks an out-of-order drive-API call — a caller bug.
	Precondition
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case Allocation:
		return "Allocation"
	case Precondition:
		return "Precondition"
	}
	return "Unknown"
}

// Error is the scanline engine's error type: a base error tagged with a
// [Kind].
type Error struct {
	Kind Kind
	Base error
}

// New returns a new [Error] of the given kind with the given text.
func New(kind Kind, text string) error {
	return &Error{Kind: kind, Base: errors.New(text)}
}

// Errorf returns a new [Error] of the given kind with the given format and
// arguments.
func Errorf(kind Kind, format string, a ...any) error {
	return &Error{Kind: kind, Base: fmt.Errorf(format, a...)}
}

// Error returns the wrapped error's message.
func (e *Error) Error() string {
	return e.Base.Error()
}

// Unwrap returns the wrapped base error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is reports whether target is an [Error] of the same [Kind].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the [Kind] of err if it is (or wraps) an [Error], and
// false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
