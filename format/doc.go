// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package format substitutes positional arguments into brace-style message
templates such as "Hello, {}!" or "{1}, {0}".

Templates are treated as data: a translated template may disagree with the
template the developer wrote. Nothing in this package panics on malformed
input. [Format] reports failure with a boolean so the caller can retry with
the original template, and [Validate] classifies the same problems as errors
for build-time diagnostics.

# Syntax

	{}     next sequential argument
	{N}    argument N (zero-based, ASCII digits only)
	{{     literal "{"
	}}     literal "}"

Any other "{" or "}" is a syntax error.

# Argument accounting

Every supplied argument must be referenced at least once, either by a
sequential "{}" or by an explicit "{N}". An argument may be referenced more
than once:

	format.Format("{}, {}, {1}", []string{"First", "Second"})
	// "First, Second, Second", true

	format.Format("{0}, {}", []string{"First", "Second"})
	// "", false: "Second" is never used

# Validation

[Validate] checks a literal template against a declared argument count
without any argument values. Only "{}" placeholders are counted against
the declared count; "{N}" references are bounds-checked. A template that
validates is guaranteed to format successfully with exactly that many
arguments, which makes it a safe fallback for a translation that does not.
*/
package format
