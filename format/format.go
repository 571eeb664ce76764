// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package format

import (
	"fmt"
	"strings"
)

// Format substitutes args into template.
//
// It returns false if the template is malformed, refers to an argument that
// does not exist, has more "{}" placeholders than args, or leaves any
// argument unused. Literal text is copied byte for byte.
func Format(template string, args []string) (string, bool) {
	out, err := substitute(template, args)
	if err != nil {
		return "", false
	}

	return out, true
}

// Check reports why [Format] would fail for template with n arguments, or
// nil if it would succeed. Unlike [Validate], it applies the same rules as
// Format, so explicit "{N}" references do count as uses.
func Check(template string, n int) error {
	if n < 0 {
		n = 0
	}

	_, err := substitute(template, make([]string, n))

	return err
}

// Sprint renders each value with fmt.Sprint, producing arguments suitable
// for [Format].
func Sprint(values ...any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			out[i] = s

			continue
		}

		out[i] = fmt.Sprint(v)
	}

	return out
}

func substitute(template string, args []string) (string, error) {
	r := NewResolver(args)
	s := Scan(template)

	var b strings.Builder

	b.Grow(len(template))

	cursor := 0

	for {
		tok, more := s.Next()
		if !more {
			break
		}

		var text string

		switch tok.Kind {
		case KindArgument:
			var ok bool

			if tok.Explicit {
				text, ok = r.Get(tok.Index)
				if !ok {
					return "", &IndexOutOfRangeError{Index: tok.Index, Args: len(args)}
				}
			} else {
				text, ok = r.Next()
				if !ok {
					return "", &TooFewArgumentsError{Args: len(args), Offset: tok.Start}
				}
			}
		case KindEscaped:
			text = tok.Brace.String()
		default:
			return "", &UnmatchedBraceError{Brace: tok.Brace, Offset: tok.Start}
		}

		b.WriteString(template[cursor:tok.Start])
		b.WriteString(text)

		cursor = tok.End
	}

	b.WriteString(template[cursor:])

	if i := r.firstUnused(); i >= 0 {
		return "", &UnusedArgumentError{Index: i}
	}

	return b.String(), nil
}
