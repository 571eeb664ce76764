// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package format

// Validate checks a literal template against the number of arguments it
// will be called with, without needing the argument values.
//
// The boolean result reports whether the template needs [Format] at all: it
// is false only when the template has no placeholders and no escapes, in
// which case it can be used verbatim.
//
// The error is one of *[UnmatchedBraceError], *[IndexOutOfRangeError] or
// *[ArgumentCountMismatchError]. Only "{}" placeholders are counted against
// n; explicit "{N}" references must merely satisfy N < n.
func Validate(template string, n int) (bool, error) {
	return analyze(template, n, nil)
}

// Arity returns the number of "{}" placeholders in template, which is the
// only argument count template can validate against. It fails on syntax
// errors only.
func Arity(template string) (int, error) {
	count := 0

	for tok := range Scan(template).All() {
		switch tok.Kind {
		case KindArgument:
			if !tok.Explicit {
				count++
			}
		case KindUnescaped:
			return 0, &UnmatchedBraceError{Brace: tok.Brace, Offset: tok.Start}
		}
	}

	return count, nil
}

// analyze runs the validator. When pieces is non-nil it also records the
// template as a sequence of literal and argument pieces.
func analyze(template string, n int, pieces *[]piece) (bool, error) {
	sequential := 0
	escapes := false
	cursor := 0

	for tok := range Scan(template).All() {
		switch tok.Kind {
		case KindArgument:
			if tok.Explicit {
				if tok.Index >= n {
					return false, &IndexOutOfRangeError{Index: tok.Index, Args: n}
				}
			} else {
				sequential++
			}
		case KindEscaped:
			escapes = true
		default:
			return false, &UnmatchedBraceError{Brace: tok.Brace, Offset: tok.Start}
		}

		if pieces != nil {
			appendText(pieces, template[cursor:tok.Start])

			switch {
			case tok.Kind == KindEscaped:
				appendText(pieces, tok.Brace.String())
			case tok.Explicit:
				*pieces = append(*pieces, piece{kind: pieceIndex, index: tok.Index})
			default:
				*pieces = append(*pieces, piece{kind: pieceNext})
			}
		}

		cursor = tok.End
	}

	if sequential != n {
		return false, &ArgumentCountMismatchError{Found: sequential, Expected: n}
	}

	if pieces != nil {
		appendText(pieces, template[cursor:])
	}

	return sequential > 0 || escapes, nil
}
