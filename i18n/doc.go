// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n provides internationalisation utilities backed by GNU gettext
.po catalogues. It translates source message IDs (msgids) across locales,
supports context, plural forms and additional domains, and formats the
result with brace placeholders using package format.

# Quick start

Use the original English text as the msgid; do not invent keys.

Translate strings with calls such as:

	i18n.Tr(ctx, "Are you sure you want to quit?")
	i18n.TrC(ctx, "menu", "Open") // disambiguation via context
	i18n.TrN(ctx, "{} file", "{} files", n, n)
	i18n.TrNC(ctx, "status", "{} item selected", "{} items selected", n, n)
	i18n.TrD(ctx, "errors", "file {} not found", name)

Translations can be used directly in templ templates:

	{ i18n.Tr(ctx, "Settings") }
	@i18n.MsgKey("Settings")

# Formatting

Arguments are rendered with fmt.Sprint and substituted in order into "{}"
placeholders, or by position into "{N}" placeholders. "{{" and "}}" produce
literal braces. A translator may reorder arguments with "{1} ... {0}", but
every argument must appear in the translation.

A message with no arguments and no braces is returned as is.

# Translations that do not format

A translation is only used when it formats with the arguments of the call.
Otherwise the msgid is formatted instead, and a warning naming the locale and
msgid is logged once. The failed translation is remembered so that later calls
go straight to the msgid.

Literal msgids are checked ahead of time by the msgcheck analyzer, and
catalogues by the pocheck command.

# Missing translations

By default, missing translations fall back to the msgid. When
StrictMissingKeys is enabled, missing lookups are logged once
per locale+key and the returned text is visibly wrapped as "⟦...⟧".
*/
package i18n
