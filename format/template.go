// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package format

import (
	"fmt"
	"strings"
)

type pieceKind uint8

const (
	pieceText pieceKind = iota
	pieceNext
	pieceIndex
)

type piece struct {
	kind  pieceKind
	text  string
	index int
}

// Template is a validated template together with its pre-split pieces.
// Rendering a Template with the argument count it was compiled for cannot
// fail, which makes it the fallback when a translation does not format.
//
// A Template is immutable and safe for concurrent use.
type Template struct {
	source          string
	args            int
	needsFormatting bool
	pieces          []piece
}

// Compile validates template against n arguments (see [Validate]) and
// returns the compiled form.
func Compile(template string, n int) (*Template, error) {
	var pieces []piece

	needs, err := analyze(template, n, &pieces)
	if err != nil {
		return nil, err
	}

	return &Template{
		source:          template,
		args:            n,
		needsFormatting: needs,
		pieces:          pieces,
	}, nil
}

// MustCompile is like [Compile] but panics on error. It is intended for
// package-level templates written in source code.
func MustCompile(template string, n int) *Template {
	t, err := Compile(template, n)
	if err != nil {
		panic(fmt.Sprintf("format: Compile(%q, %d): %v", template, n, err))
	}

	return t
}

// Source returns the template text.
func (t *Template) Source() string { return t.source }

// Args returns the number of arguments the template was compiled for.
func (t *Template) Args() int { return t.args }

// NeedsFormatting reports whether the template contains any placeholder or
// escape. When false, Source can be used as is.
func (t *Template) NeedsFormatting() bool { return t.needsFormatting }

// Render substitutes args. It returns [ErrArgumentCount] if len(args)
// differs from the compiled argument count; otherwise it always succeeds
// and agrees with [Format].
func (t *Template) Render(args []string) (string, error) {
	if len(args) != t.args {
		return "", fmt.Errorf("%w: want %d, got %d", ErrArgumentCount, t.args, len(args))
	}

	if !t.needsFormatting {
		return t.source, nil
	}

	var b strings.Builder

	b.Grow(len(t.source))

	next := 0

	for _, p := range t.pieces {
		switch p.kind {
		case pieceText:
			b.WriteString(p.text)
		case pieceNext:
			b.WriteString(args[next])
			next++
		case pieceIndex:
			b.WriteString(args[p.index])
		}
	}

	return b.String(), nil
}

// appendText adds literal text, merging it into a preceding text piece.
func appendText(pieces *[]piece, s string) {
	if s == "" {
		return
	}

	if n := len(*pieces); n > 0 && (*pieces)[n-1].kind == pieceText {
		(*pieces)[n-1].text += s

		return
	}

	*pieces = append(*pieces, piece{kind: pieceText, text: s})
}
