// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"

	"codeberg.org/bracefmt/bracefmt/format"
)

// NewUserError creates a new UserError whose message is msgid translated
// for the locale in ctx and formatted with args.
func NewUserError(ctx context.Context, msgid string, args ...any) *UserError {
	return &UserError{
		msgid: msgid,
		msg:   Tr(ctx, msgid, args...),
	}
}

// UserError is an error type whose message is a translated string.
// It is intended for errors that can be shown directly to the end user.
type UserError struct {
	msgid string
	msg   string
}

// Error returns the translated error message.
func (e *UserError) Error() string {
	return e.msg
}

// MsgID returns the untranslated message id the error was created with.
func (e *UserError) MsgID() string {
	return e.msgid
}

// Tr returns the translated string for a source message id (msgid), which should
// be the original English UI text, with args substituted into its "{}" and "{N}"
// placeholders.
//
// If a translation is not found, Tr formats the msgid itself, visibly wrapped
// if strict mode is enabled. A translation that does not format with args is
// replaced by the formatted msgid.
func Tr(ctx context.Context, msgid string, args ...any) string {
	return translate(ctx, lookup{msgid: msgid}, args)
}

// TrC translates a source message id (msgid) with an explicit disambiguating
// context, similar to gettext's pgettext.
func TrC(ctx context.Context, contextKey, msgid string, args ...any) string {
	return translate(ctx, lookup{context: contextKey, msgid: msgid}, args)
}

// TrD translates msgid from the named gettext domain instead of the default one,
// similar to gettext's dgettext.
func TrD(ctx context.Context, domain, msgid string, args ...any) string {
	return translate(ctx, lookup{domain: domain, msgid: msgid}, args)
}

// TrN translates a singular or plural message depending on n. If a translation
// is missing, we choose singular when n == 1, otherwise plural.
//
// n only selects the form; pass it again in args if the message shows it.
func TrN(ctx context.Context, singular, plural string, n int, args ...any) string {
	return translate(ctx, lookup{msgid: singular, plural: plural, n: n, pluralMode: true}, args)
}

// TrNC is the contextual variant of TrN, similar to gettext's npgettext.
func TrNC(ctx context.Context, contextKey, singular, plural string, n int, args ...any) string {
	return translate(ctx, lookup{
		context: contextKey, msgid: singular, plural: plural, n: n, pluralMode: true,
	}, args)
}

// TrDN is the domain variant of TrN, similar to gettext's dngettext.
func TrDN(ctx context.Context, domain, singular, plural string, n int, args ...any) string {
	return translate(ctx, lookup{
		domain: domain, msgid: singular, plural: plural, n: n, pluralMode: true,
	}, args)
}

// lookup describes one catalogue query.
type lookup struct {
	domain, context, msgid, plural string

	n          int
	pluralMode bool
}

// original returns the untranslated text selected by n.
func (l lookup) original() string {
	if l.pluralMode && l.n != 1 {
		return l.plural
	}

	return l.msgid
}

// find returns the catalogue translation for l in loc, if any.
func (l lookup) find(loc *gotext.Locale) (string, bool) {
	if loc == nil {
		return "", false
	}

	dom := l.domain
	if dom == "" {
		dom = poDomain
	}

	switch {
	case l.pluralMode && l.context != "":
		if loc.IsTranslatedNDC(dom, l.msgid, l.n, l.context) {
			return loc.GetNDC(dom, l.msgid, l.plural, l.n, l.context), true
		}
	case l.pluralMode:
		if loc.IsTranslatedND(dom, l.msgid, l.n) {
			return loc.GetND(dom, l.msgid, l.plural, l.n), true
		}
	case l.context != "":
		if loc.IsTranslatedDC(dom, l.msgid, l.context) {
			return loc.GetDC(dom, l.msgid, l.context), true
		}
	default:
		if loc.IsTranslatedD(dom, l.msgid) {
			return loc.GetD(dom, l.msgid), true
		}
	}

	return "", false
}

// key is the deduplication key used in logs and caches.
func (l lookup) key() string {
	k := buildLogKey(l.context, l.msgid)
	if l.domain != "" {
		k = l.domain + ":" + k
	}

	return k
}

// translate performs the underlying lookup and formatting.
func translate(ctx context.Context, l lookup, values []any) string {
	loc, matched := resolveLocale(TagFrom(ctx))

	original := l.original()
	locale := strippedTagString(matched)

	candidate, found := l.find(loc)
	if !found {
		candidate = original
	}

	text, ok := render(locale, l.key(), candidate, original, format.Sprint(values...))

	// Msgids are written in the base locale, so they are never missing there.
	missing := !found && matched != baseTag
	if missing {
		logMissingOnce(locale, l.key())
	}

	if (missing || !ok) && strictMissingKeys() {
		text = "⟦" + text + "⟧"
	}

	return text
}

// resolveLocale matches t to one of the loaded locales and returns the
// corresponding gotext.Locale and the matched tag.
// If no matcher or no locale is found, it returns nil and baseTag.
func resolveLocale(t language.Tag) (*gotext.Locale, language.Tag) {
	if matcher == nil {
		return nil, baseTag
	}

	// The index is used rather than the returned tag, which may carry
	// extensions such as "-u-rg-jpzzzz" that are not keys of localesByTag.
	_, idx, _ := matcher.Match(t)
	matched := supportedTags[idx]

	return localesByTag[matched.String()], matched
}
