// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"codeberg.org/bracefmt/bracefmt/config"
)

// TestMain loads the bundled catalogues from the repository's po directory.
func TestMain(m *testing.M) {
	config.Global.SetDefaults()
	config.Global.Cache.Compress = true

	if err := SetupFS(os.DirFS("..")); err != nil {
		fmt.Fprintln(os.Stderr, "i18n setup:", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func ctxFor(tag language.Tag) context.Context {
	return WithTag(context.Background(), tag)
}

func TestTr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  language.Tag
		call func(ctx context.Context) string
		want string
	}{
		{
			name: "base locale formats msgid",
			tag:  language.English,
			call: func(ctx context.Context) string { return Tr(ctx, "Hello, {}!", "Alice") },
			want: "Hello, Alice!",
		},
		{
			name: "translated",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return Tr(ctx, "Hello, {}!", "Alice") },
			want: "こんにちは、Aliceさん！",
		},
		{
			name: "translator reorders arguments",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return Tr(ctx, "{} of {} files copied", 3, 10) },
			want: "10個中3個のファイルをコピーしました",
		},
		{
			name: "regional preference matches language",
			tag:  language.MustParse("de-AT"),
			call: func(ctx context.Context) string { return Tr(ctx, "{} of {} files copied", 3, 10) },
			want: "3 von 10 Dateien kopiert",
		},
		{
			name: "escapes without arguments",
			tag:  language.English,
			call: func(ctx context.Context) string { return Tr(ctx, "Use {{ and }} to write literal braces") },
			want: "Use { and } to write literal braces",
		},
		{
			name: "translated escapes",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return Tr(ctx, "Use {{ and }} to write literal braces") },
			want: "波括弧は { と } で書きます",
		},
		{
			name: "unsupported locale falls back to msgid",
			tag:  language.French,
			call: func(ctx context.Context) string { return Tr(ctx, "Hello, {}!", "Alice") },
			want: "Hello, Alice!",
		},
		{
			name: "no arguments and no braces",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return Tr(ctx, "Plain text") },
			want: "Plain text",
		},
		{
			name: "explicit reference in msgid",
			tag:  language.English,
			call: func(ctx context.Context) string { return Tr(ctx, "{0}{0}", "ab") },
			want: "abab",
		},
		{
			name: "context",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return TrC(ctx, "menu", "Open") },
			want: "開く",
		},
		{
			name: "context in base locale",
			tag:  language.English,
			call: func(ctx context.Context) string { return TrC(ctx, "menu", "Open") },
			want: "Open",
		},
		{
			name: "plural singular",
			tag:  language.German,
			call: func(ctx context.Context) string { return TrN(ctx, "{} file", "{} files", 1, 1) },
			want: "1 Datei",
		},
		{
			name: "plural plural",
			tag:  language.German,
			call: func(ctx context.Context) string { return TrN(ctx, "{} file", "{} files", 4, 4) },
			want: "4 Dateien",
		},
		{
			name: "plural with single form",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return TrN(ctx, "{} file", "{} files", 4, 4) },
			want: "4個のファイル",
		},
		{
			name: "plural in base locale",
			tag:  language.English,
			call: func(ctx context.Context) string { return TrN(ctx, "{} file", "{} files", 4, 4) },
			want: "4 files",
		},
		{
			name: "plural with context",
			tag:  language.Japanese,
			call: func(ctx context.Context) string {
				return TrNC(ctx, "status", "{} item selected", "{} items selected", 2, 2)
			},
			want: "2個選択中",
		},
		{
			name: "domain",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return TrD(ctx, "errors", "file {} not found", "a.txt") },
			want: "ファイルa.txtが見つかりません",
		},
		{
			name: "domain plural",
			tag:  language.Japanese,
			call: func(ctx context.Context) string { return TrDN(ctx, "errors", "{} error", "{} errors", 3, 3) },
			want: "3件のエラー",
		},
		{
			name: "domain missing from locale",
			tag:  language.German,
			call: func(ctx context.Context) string { return TrD(ctx, "errors", "file {} not found", "a.txt") },
			want: "file a.txt not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.call(ctxFor(tt.tag)))
		})
	}
}

func TestTrDivergentTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag         language.Tag
		translation string
	}{
		{language.Japanese, "{}を移動しました"},            // drops an argument
		{language.German, "{} nach {} verschoben}"}, // unmatched brace
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			t.Parallel()

			ctx := ctxFor(tt.tag)

			for range 3 {
				assert.Equal(t, "Moved a.txt to b/", Tr(ctx, "Moved {} to {}", "a.txt", "b/"))
			}

			require.NotNil(t, divergent)

			got, ok := divergent.Peek(divergenceKey(tt.tag.String(), "Moved {} to {}", 2))
			require.True(t, ok)
			assert.Equal(t, tt.translation, got)

			_, logged := divergenceOnce.Load(tt.tag.String() + "\x00" + "Moved {} to {}")
			assert.True(t, logged)
		})
	}
}

func TestRenderChangedTranslation(t *testing.T) {
	t.Parallel()

	const (
		locale = "xx"
		key    = "Copied {} to {}"
	)

	require.NotNil(t, divergent)

	id := divergenceKey(locale, key, 2)
	args := []string{"a", "b"}

	got, ok := render(locale, key, "{} kopiert", key, args)
	assert.True(t, ok)
	assert.Equal(t, "Copied a to b", got)

	cached, found := divergent.Peek(id)
	require.True(t, found)
	assert.Equal(t, "{} kopiert", cached)

	got, ok = render(locale, key, "{} nach {} kopiert", key, args)
	assert.True(t, ok)
	assert.Equal(t, "a nach b kopiert", got)

	_, found = divergent.Peek(id)
	assert.False(t, found)
}

func TestTrInvalidMsgid(t *testing.T) {
	t.Parallel()

	ctx := ctxFor(language.English)

	assert.Equal(t, "{} and {}", Tr(ctx, "{} and {}", "one"))
	assert.Equal(t, "{", Tr(ctx, "{", "one"))
	assert.Equal(t, "done", Tr(ctx, "done", "unused"))
}

// TestStrictMissingKeys mutates config.Global and must not run in parallel.
func TestStrictMissingKeys(t *testing.T) {
	config.Global.Internationalization.StrictMissingKeys = true

	t.Cleanup(func() { config.Global.Internationalization.StrictMissingKeys = false })

	ja := ctxFor(language.Japanese)
	en := ctxFor(language.English)

	assert.Equal(t, "⟦Not in any catalog⟧", Tr(ja, "Not in any catalog"))
	assert.Equal(t, "⟦Only 1 here⟧", Tr(ja, "Only {} here", 1))
	assert.Equal(t, "Not in any catalog", Tr(en, "Not in any catalog"))
	assert.Equal(t, "こんにちは、Bobさん！", Tr(ja, "Hello, {}!", "Bob"))
	assert.Equal(t, "⟦{} and {}⟧", Tr(en, "{} and {}", "one"))

	_, logged := missingKeyOnce.Load("ja\x00Not in any catalog")
	assert.True(t, logged)
}

func TestUserError(t *testing.T) {
	t.Parallel()

	err := NewUserError(ctxFor(language.Japanese), "Hello, {}!", "Alice")

	require.Error(t, err)
	assert.Equal(t, "こんにちは、Aliceさん！", err.Error())
	assert.Equal(t, "Hello, {}!", err.MsgID())
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]language.Tag{language.German, language.English, language.Japanese},
		Languages(),
	)
}

func TestTagFrom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, baseTag, TagFrom(context.Background()))
	assert.Equal(t, baseTag, TagFrom(nil)) //nolint:staticcheck // nil context is documented
	assert.Equal(t, language.Japanese, TagFrom(ctxFor(language.Japanese)))
}
