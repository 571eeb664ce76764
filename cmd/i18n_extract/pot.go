// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// key models a gettext entry identified by context, singular msgid,
// and optional plural msgid_plural. For non-plural entries, plural is empty.
type key struct {
	ctx    string
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// now is replaced in tests.
var now = time.Now

// writePOT writes a template with one entry per key, sorted by context,
// msgid and plural. Entries containing braces are flagged python-brace-format,
// the gettext flag for this placeholder syntax.
func writePOT(b *strings.Builder, version string, refs map[key][]ref) {
	writeHeader(b, version)

	keys := make([]key, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ctx != keys[j].ctx {
			return keys[i].ctx < keys[j].ctx
		}

		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}

		return keys[i].plural < keys[j].plural
	})

	for i, k := range keys {
		rs := refs[k]
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].file != rs[j].file {
				return rs[i].file < rs[j].file
			}

			return rs[i].line < rs[j].line
		})

		// After sorting by file and line, duplicates will be adjacent.
		fmt.Fprint(b, "#:")

		var last ref
		for _, r := range rs {
			if r != last {
				fmt.Fprintf(b, " %s:%d", r.file, r.line)

				last = r
			}
		}

		fmt.Fprintln(b)

		if strings.ContainsAny(k.id+k.plural, "{}") {
			fmt.Fprintln(b, "#, python-brace-format")
		}

		if k.ctx != "" {
			fmt.Fprintf(b, "msgctxt %s\n", quote(k.ctx))
		}

		fmt.Fprintf(b, "msgid %s\n", quote(k.id))

		if k.plural != "" {
			fmt.Fprintf(b, "msgid_plural %s\n", quote(k.plural))
			fmt.Fprintln(b, `msgstr[0] ""`)
			fmt.Fprintln(b, `msgstr[1] ""`)
		} else {
			fmt.Fprintln(b, `msgstr ""`)
		}

		// Add a separating blank line, but not after the very last entry.
		if i < len(keys)-1 {
			fmt.Fprintln(b)
		}
	}
}

// quote renders s as a PO string. Unlike %q it keeps non-ASCII text as is.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`, "\r", `\r`)

	return `"` + r.Replace(s) + `"`
}

// writeHeader emits a POT header.
func writeHeader(b *strings.Builder, version string) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: bracefmt %s\\n\"\n", version)
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}
