// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package format

import (
	"iter"
	"strconv"
	"strings"
)

// Brace identifies an opening or closing curly brace.
type Brace int

const (
	Opening Brace = iota
	Closing
)

// String returns the brace character.
func (b Brace) String() string {
	if b == Closing {
		return "}"
	}

	return "{"
}

// Escape returns the doubled form that produces b literally.
func (b Brace) Escape() string {
	return b.String() + b.String()
}

// Kind describes what a [Token] represents.
type Kind int

const (
	// KindArgument is a "{}" or "{N}" placeholder.
	KindArgument Kind = iota + 1
	// KindEscaped is a "{{" or "}}" escape.
	KindEscaped
	// KindUnescaped is a lone brace, which is a syntax error.
	KindUnescaped
)

// Token is a single placeholder, escape or error found by a [Scanner].
//
// Start and End are byte offsets into the scanned template. Text between the
// end of one token and the start of the next is literal and is not reported.
type Token struct {
	Kind Kind

	// Explicit reports whether an argument token carries an index ("{N}").
	// When false, the token refers to the next sequential argument.
	Explicit bool
	Index    int

	// Brace is set for escaped and unescaped tokens.
	Brace Brace

	Start int
	End   int
}

// patterns is the fixed pattern set matched by the scanner, longest first,
// so that trying them in order at one position yields the longest match.
var patterns = [...]string{"{}", "{{", "}}", "{", "}"}

const (
	patArgument = iota
	patEscapedOpening
	patEscapedClosing
	patOpening
	patClosing
)

// Scanner tokenises a template. It is a pull-based generator: each call to
// [Scanner.Next] resumes where the previous one stopped.
//
// A Scanner is not safe for concurrent use and cannot be restarted; call
// [Scan] again for a fresh pass.
type Scanner struct {
	template string
	pos      int

	// pending is set after a lone "{" while waiting for the "}" that closes
	// an explicit index. openStart is the offset of that "{", digitStart
	// the offset right after it.
	pending    bool
	openStart  int
	digitStart int
}

// Scan returns a Scanner positioned at the start of template.
func Scan(template string) *Scanner {
	return &Scanner{template: template}
}

// Next returns the next token. The second result is false once the template
// is exhausted.
//
// Unescaped tokens are ordinary results; callers that treat them as fatal
// should stop calling Next.
//
// While an explicit index is pending, any match other than "}" yields an
// unescaped opening brace and returns the scanner to its normal state; the
// match itself is discarded.
func (s *Scanner) Next() (Token, bool) {
	for {
		pat, start, end, ok := s.match()
		if !ok {
			break
		}

		s.pos = end

		if s.pending {
			s.pending = false

			if pat != patClosing {
				return s.unescapedOpening(end), true
			}

			n, ok := parseIndex(s.template[s.digitStart:start])
			if !ok {
				return s.unescapedOpening(end), true
			}

			return Token{Kind: KindArgument, Explicit: true, Index: n, Start: s.openStart, End: end}, true
		}

		switch pat {
		case patArgument:
			return Token{Kind: KindArgument, Start: start, End: end}, true
		case patEscapedOpening:
			return Token{Kind: KindEscaped, Brace: Opening, Start: start, End: end}, true
		case patEscapedClosing:
			return Token{Kind: KindEscaped, Brace: Closing, Start: start, End: end}, true
		case patOpening:
			s.pending = true
			s.openStart = start
			s.digitStart = end
		case patClosing:
			return Token{Kind: KindUnescaped, Brace: Closing, Start: start, End: end}, true
		}
	}

	if s.pending {
		s.pending = false

		return s.unescapedOpening(len(s.template)), true
	}

	return Token{}, false
}

// All returns an iterator over the remaining tokens.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

func (s *Scanner) unescapedOpening(end int) Token {
	return Token{Kind: KindUnescaped, Brace: Opening, Start: s.openStart, End: end}
}

// match finds the leftmost brace at or after s.pos and returns the longest
// pattern starting there.
func (s *Scanner) match() (pat, start, end int, ok bool) {
	if s.pos >= len(s.template) {
		return 0, 0, 0, false
	}

	i := strings.IndexAny(s.template[s.pos:], "{}")
	if i < 0 {
		s.pos = len(s.template)

		return 0, 0, 0, false
	}

	start = s.pos + i
	rest := s.template[start:]

	for p, lit := range patterns {
		if strings.HasPrefix(rest, lit) {
			return p, start, start + len(lit), true
		}
	}

	// Unreachable: rest starts with a brace and both single braces are patterns.
	return 0, 0, 0, false
}

// parseIndex parses a non-empty run of ASCII digits.
func parseIndex(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}

	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}

	return n, true
}
