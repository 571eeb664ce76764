// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"codeberg.org/bracefmt/bracefmt/config"
	"codeberg.org/bracefmt/bracefmt/i18n"
)

func TestMain(m *testing.M) {
	config.Global.SetDefaults()

	// The embedded catalogues are assigned by init.
	if err := i18n.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "i18n setup:", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lang  language.Tag
		opts  options
		msgid string
		args  []string
		want  string
	}{
		{"default", language.Japanese, options{}, "Hello, {}!", []string{"Ann"}, "こんにちは、Annさん！"},
		{"context", language.German, options{context: "menu"}, "Open", nil, "Öffnen"},
		{"plural", language.German, options{plural: "{} files", n: 2}, "{} file", []string{"2"}, "2 Dateien"},
		{
			"plural with context", language.German,
			options{context: "status", plural: "{} items selected", n: 1},
			"{} item selected", []string{"1"}, "1 Element ausgewählt",
		},
		{"domain", language.Japanese, options{domain: "errors"}, "file {} not found", []string{"a"}, "ファイルaが見つかりません"},
		{
			"domain plural", language.Japanese,
			options{domain: "errors", plural: "{} errors", n: 5},
			"{} error", []string{"5"}, "5件のエラー",
		},
		{"falls back on divergence", language.German, options{}, "Moved {} to {}", []string{"a", "b"}, "Moved a to b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := i18n.WithTag(context.Background(), tt.lang)
			assert.Equal(t, tt.want, translate(ctx, tt.opts, tt.msgid, tt.args))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, validate(&buf, options{plural: "{} files"}, "{} file", 1))
	assert.Equal(t, "ok\n", buf.String())

	buf.Reset()

	err := validate(&buf, options{plural: "files"}, "{} file {", 1)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, buf.String(), "\"{} file {\": unmatched `{` in format string")
	assert.Contains(t, buf.String(), "\"files\": 0 positional arguments in format string, but there is 1 argument")
}
