// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package format

import (
	"errors"
	"fmt"
)

// ErrInvalidTemplate is wrapped by every error returned from this package,
// so callers can test with errors.Is regardless of the concrete type.
var ErrInvalidTemplate = errors.New("invalid format string")

// ErrArgumentCount is returned by [Template.Render] when called with a
// different number of arguments than the template was compiled for.
var ErrArgumentCount = errors.New("wrong number of arguments for compiled template")

// UnmatchedBraceError is a lone "{" or "}" that is neither a placeholder nor
// an escape. Offset is the byte offset of the brace in the template.
type UnmatchedBraceError struct {
	Brace  Brace
	Offset int
}

func (e *UnmatchedBraceError) Error() string {
	return fmt.Sprintf(
		"unmatched `%s` in format string\nnote: if you intended to print `%s`, you can escape it using `%s`",
		e.Brace, e.Brace, e.Brace.Escape(),
	)
}

func (e *UnmatchedBraceError) Unwrap() error { return ErrInvalidTemplate }

// IndexOutOfRangeError is an explicit "{N}" reference with N not below the
// number of arguments.
type IndexOutOfRangeError struct {
	Index int
	Args  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"invalid reference to positional argument %d (%s)\nnote: positional arguments are zero-based",
		e.Index, describeArgs(e.Args),
	)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrInvalidTemplate }

// ArgumentCountMismatchError means the number of "{}" placeholders differs
// from the declared number of arguments.
type ArgumentCountMismatchError struct {
	Found    int
	Expected int
}

func (e *ArgumentCountMismatchError) Error() string {
	noun := "arguments"
	if e.Found == 1 {
		noun = "argument"
	}

	return fmt.Sprintf("%d positional %s in format string, but %s", e.Found, noun, describeArgs(e.Expected))
}

func (e *ArgumentCountMismatchError) Unwrap() error { return ErrInvalidTemplate }

// TooFewArgumentsError means a "{}" placeholder was reached after every
// argument had been consumed sequentially. Offset is the placeholder's
// byte offset.
type TooFewArgumentsError struct {
	Args   int
	Offset int
}

func (e *TooFewArgumentsError) Error() string {
	return fmt.Sprintf("more positional placeholders in format string than arguments (%s)", describeArgs(e.Args))
}

func (e *TooFewArgumentsError) Unwrap() error { return ErrInvalidTemplate }

// UnusedArgumentError means argument Index was never referenced.
type UnusedArgumentError struct {
	Index int
}

func (e *UnusedArgumentError) Error() string {
	return fmt.Sprintf("argument %d is never used in format string", e.Index)
}

func (e *UnusedArgumentError) Unwrap() error { return ErrInvalidTemplate }

func describeArgs(n int) string {
	switch n {
	case 0:
		return "no arguments were given"
	case 1:
		return "there is 1 argument"
	default:
		return fmt.Sprintf("there are %d arguments", n)
	}
}
