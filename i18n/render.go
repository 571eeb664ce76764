// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"strconv"
	"strings"
	"sync"

	"codeberg.org/bracefmt/bracefmt/format"
)

// compiled caches the msgid fallback per template and argument count.
var compiled sync.Map // key: n + "\x00" + text, value: compileResult

type compileResult struct {
	tmpl *format.Template
	err  error
}

// render substitutes args into candidate, the catalogue text for original.
//
// When candidate does not format with args, the failure is logged once and
// remembered, and original is rendered instead. When original is itself
// invalid for args, it is returned unformatted and ok is false.
func render(locale, key, candidate, original string, args []string) (text string, ok bool) {
	// Nothing to substitute and nothing to unescape.
	if len(args) == 0 && !strings.ContainsAny(candidate, "{}") {
		return candidate, true
	}

	if candidate == original {
		if s, ok := format.Format(candidate, args); ok {
			return s, true
		}

		return fallback(locale, key, original, args)
	}

	id := divergenceKey(locale, key, len(args))

	if !knownDivergent(id, candidate) {
		if s, ok := format.Format(candidate, args); ok {
			return s, true
		}

		logDivergenceOnce(locale, key, candidate, format.Check(candidate, len(args)))

		if divergent != nil {
			divergent.Add(id, candidate)
		}
	}

	return fallback(locale, key, original, args)
}

// fallback renders the msgid itself.
func fallback(locale, key, original string, args []string) (string, bool) {
	res := compile(original, len(args))
	if res.err == nil {
		if s, err := res.tmpl.Render(args); err == nil {
			return s, true
		}
	}

	// Explicit references count as uses when formatting but not when compiling.
	if s, ok := format.Format(original, args); ok {
		return s, true
	}

	Logger.Error().
		Err(res.err).
		Str("locale", locale).
		Str("key", key).
		Int("args", len(args)).
		Msg("Message id does not format with its arguments")

	return original, false
}

func compile(original string, n int) compileResult {
	id := strconv.Itoa(n) + "\x00" + original
	if v, ok := compiled.Load(id); ok {
		return v.(compileResult)
	}

	tmpl, err := format.Compile(original, n)
	res := compileResult{tmpl: tmpl, err: err}

	v, _ := compiled.LoadOrStore(id, res)

	return v.(compileResult)
}

// divergenceKey identifies a translation of key in locale used with n arguments.
func divergenceKey(locale, key string, n int) string {
	return locale + "\x00" + key + "\x00" + strconv.Itoa(n)
}

// knownDivergent reports whether candidate was already found not to format
// under id. A catalogue reload that changes the text invalidates the entry.
func knownDivergent(id, candidate string) bool {
	if divergent == nil {
		return false
	}

	prev, ok := divergent.Get(id)
	if !ok {
		return false
	}

	if prev != candidate {
		divergent.Remove(id)

		return false
	}

	return true
}
