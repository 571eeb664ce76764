// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type tagKey struct{}

// WithTag returns a copy of ctx that selects t for every translation
// performed with it. Use [Match] or [DetectEnvLanguage] to turn user
// preferences into a supported tag first.
func WithTag(ctx context.Context, t language.Tag) context.Context {
	return context.WithValue(ctx, tagKey{}, t)
}

// TagFrom reports the tag installed by [WithTag]. A nil ctx, a ctx without a
// tag, or the zero tag all resolve to the base locale.
func TagFrom(ctx context.Context) language.Tag {
	if ctx == nil {
		return baseTag
	}

	if t, ok := ctx.Value(tagKey{}).(language.Tag); ok && t != (language.Tag{}) {
		return t
	}

	return baseTag
}
