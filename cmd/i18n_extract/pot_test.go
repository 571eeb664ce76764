// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWritePOT(t *testing.T) {
	now = func() time.Time { return time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC) }

	refs := map[key][]ref{
		{id: "Open"}:                        {{"main.go", 9}},
		{ctx: "menu", id: "Open"}:           {{"ui/menu.go", 3}},
		{id: "{} file", plural: "{} files"}: {{"b.go", 2}, {"a.go", 7}, {"b.go", 2}},
		{id: "Say \"{{hi}}\"\nand {}"}:      {{"a.go", 1}},
		{id: "こんにちは"}:                       {{"a.go", 5}},
	}

	var b strings.Builder

	writePOT(&b, "v1.2.3", refs)

	want := `msgid ""
msgstr ""
"Project-Id-Version: bracefmt v1.2.3\n"
"POT-Creation-Date: 2025-03-01 12:30+0000\n"
"Language: en\n"
"MIME-Version: 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Content-Transfer-Encoding: 8bit\n"
"Plural-Forms: nplurals=2; plural=(n != 1);\n"

#: main.go:9
msgid "Open"
msgstr ""

#: a.go:1
#, python-brace-format
msgid "Say \"{{hi}}\"\nand {}"
msgstr ""

#: a.go:7 b.go:2
#, python-brace-format
msgid "{} file"
msgid_plural "{} files"
msgstr[0] ""
msgstr[1] ""

#: a.go:5
msgid "こんにちは"
msgstr ""

#: ui/menu.go:3
msgctxt "menu"
msgid "Open"
msgstr ""
`

	assert.Equal(t, want, b.String())
}
