// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.Japanese, Match("xx", "ja"))
	assert.Equal(t, language.German, Match("de-CH"))
	assert.Equal(t, language.English, Match())
	assert.Equal(t, language.Japanese, Match("ja-JP,ja;q=0.9,en;q=0.8"))
	assert.Equal(t, language.English, Match("fr-FR", "not_a_tag!"))
}

func TestEnvLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{"empty", nil, nil},
		{"LANG", map[string]string{"LANG": "de_DE.UTF-8"}, []string{"de-DE"}},
		{
			"LANGUAGE list wins",
			map[string]string{"LANGUAGE": "ja_JP:de", "LC_ALL": "fr_FR.UTF-8"},
			[]string{"ja-JP", "de"},
		},
		{
			"LC_ALL over LC_MESSAGES over LANG",
			map[string]string{"LC_ALL": "pt_BR@euro", "LC_MESSAGES": "de", "LANG": "ja"},
			[]string{"pt-BR"},
		},
		{"LC_MESSAGES over LANG", map[string]string{"LC_MESSAGES": "de", "LANG": "ja"}, []string{"de"}},
		{"C locale is skipped", map[string]string{"LC_ALL": "C", "LANG": "ja_JP.UTF-8"}, []string{"ja-JP"}},
		{"POSIX only", map[string]string{"LANG": "POSIX"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := envLanguages(func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMsgKey(t *testing.T) {
	t.Parallel()

	var c templ.Component = MsgKey("Use {{ and }} to write literal braces")

	var buf bytes.Buffer

	require.NoError(t, c.Render(ctxFor(language.Japanese), &buf))
	assert.Equal(t, "波括弧は { と } で書きます", buf.String())

	var tr Translatable = MsgKey("Open")
	assert.Equal(t, "Open", tr.Tr(nil)) //nolint:staticcheck // nil context is documented
}
