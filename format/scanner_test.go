// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package format

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func arg(start, end int) Token {
	return Token{Kind: KindArgument, Start: start, End: end}
}

func argN(n, start, end int) Token {
	return Token{Kind: KindArgument, Explicit: true, Index: n, Start: start, End: end}
}

func esc(b Brace, start, end int) Token {
	return Token{Kind: KindEscaped, Brace: b, Start: start, End: end}
}

func bad(b Brace, start, end int) Token {
	return Token{Kind: KindUnescaped, Brace: b, Start: start, End: end}
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		want     []Token
	}{
		{"Empty", "", nil},
		{"Plain text", "no braces here", nil},
		{"Sequential", "{}", []Token{arg(0, 2)}},
		{"Sequential with text", "Text {} text", []Token{arg(5, 7)}},
		{"Adjacent sequential", "{}{}", []Token{arg(0, 2), arg(2, 4)}},
		{"Multibyte text", "私は{}です!", []Token{arg(6, 8)}},
		{"Explicit", "{0}", []Token{argN(0, 0, 3)}},
		{"Explicit with text", "Text {0} text {1} text", []Token{argN(0, 5, 8), argN(1, 14, 17)}},
		{"Explicit multi-digit", "{12}", []Token{argN(12, 0, 4)}},
		{"Explicit multibyte", "私は{0}です!", []Token{argN(0, 6, 9)}},
		{"Escaped opening", "{{", []Token{esc(Opening, 0, 2)}},
		{"Escaped closing", "}}", []Token{esc(Closing, 0, 2)}},
		{"Escaped pair", "Text {{}} text", []Token{esc(Opening, 5, 7), esc(Closing, 7, 9)}},
		{"Repeated escapes", "{{{{", []Token{esc(Opening, 0, 2), esc(Opening, 2, 4)}},
		{"Escaped pair multibyte", "私は{{}}です!", []Token{esc(Opening, 6, 8), esc(Closing, 8, 10)}},
		{"Lone opening", "{", []Token{bad(Opening, 0, 1)}},
		{"Lone opening with text", "Text { text", []Token{bad(Opening, 5, 11)}},
		{"Lone closing", "}", []Token{bad(Closing, 0, 1)}},
		{"Closing then opening", "}{", []Token{bad(Closing, 0, 1), bad(Opening, 1, 2)}},
		{"Stray closings", "Text } text } text", []Token{bad(Closing, 5, 6), bad(Closing, 12, 13)}},
		{"Non-digit index", "{name}", []Token{bad(Opening, 0, 6)}},
		{"Signed index", "{+1}", []Token{bad(Opening, 0, 4)}},
		{"Spaced index", "{ 1}", []Token{bad(Opening, 0, 4)}},
		{"Index overflow", "{99999999999999999999999}", []Token{bad(Opening, 0, 25)}},
		{"Escape after sequential", "{}}}", []Token{arg(0, 2), esc(Closing, 2, 4)}},
		{"Escaped opening before argument", "{{{}", []Token{esc(Opening, 0, 2), arg(2, 4)}},
		{"Triple opening", "{{{", []Token{esc(Opening, 0, 2), bad(Opening, 2, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(Scan(tt.template).All())
			assert.Equal(t, tt.want, got)
		})
	}
}

// A second "{" while an explicit index is pending fails and resets the
// scanner, so the text after it is scanned normally.
func TestScanPendingIndexResets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		want     []Token
	}{
		{"Opening while pending", "{ { {}", []Token{bad(Opening, 0, 3), arg(4, 6)}},
		{"Sequential while pending", "{1{}x{}", []Token{bad(Opening, 0, 4), arg(5, 7)}},
		{"Escape while pending", "{0}}", []Token{bad(Opening, 0, 4)}},
		{"Escaped closing while pending", "{a}}{}", []Token{bad(Opening, 0, 4), arg(4, 6)}},
		{"Failed index then valid", "{x} {1}", []Token{bad(Opening, 0, 3), argN(1, 4, 7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(Scan(tt.template).All())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScannerExhausted(t *testing.T) {
	t.Parallel()

	s := Scan("a {} b")

	tok, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, arg(2, 4), tok)

	for range 3 {
		_, ok = s.Next()
		assert.False(t, ok)
	}
}

func TestBrace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{", Opening.String())
	assert.Equal(t, "}", Closing.String())
	assert.Equal(t, "{{", Opening.Escape())
	assert.Equal(t, "}}", Closing.Escape())
}
