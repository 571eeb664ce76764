// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// BaseLocale is the default locale used when none is configured.
const BaseLocale = "en"

// baseTag is the canonical tag for the configured base locale.
var baseTag = language.Make(BaseLocale)

// Languages returns the list of supported language tags derived from
// the loaded gettext catalogs.
//
// The returned slice is a copy, is sorted by tag string, and is safe to retain.
//
// Setup must be called successfully before using Languages; otherwise it panics.
func Languages() []language.Tag {
	if matcher == nil {
		panic("i18n: Setup must be called before calling Languages")
	}

	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)

	// Sort by canonical tag string.
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// Match returns the supported tag that best fits the given preferences, each
// a BCP 47 tag or an Accept-Language value. Unparseable entries are skipped.
// It returns the base locale when nothing matches or Setup has not been called.
func Match(preferred ...string) language.Tag {
	return match(preferred...)
}

func match(preferred ...string) language.Tag {
	if matcher == nil {
		return baseTag
	}

	var desired []language.Tag

	for _, p := range preferred {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}

		desired = append(desired, tags...)
	}

	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return baseTag
	}

	return supportedTags[idx]
}

// envLocaleVars lists the environment variables gettext consults, highest priority first.
var envLocaleVars = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// DetectEnvLanguage returns the supported tag that best fits the user's
// environment, read the way GNU gettext does: LANGUAGE (a colon-separated
// list), then LC_ALL, LC_MESSAGES and LANG. Variables set to "C" or "POSIX"
// are skipped. The base locale is returned when nothing matches.
func DetectEnvLanguage() language.Tag {
	return match(envLanguages(os.Getenv)...)
}

// envLanguages returns the BCP 47 forms of the locale names found in the environment.
func envLanguages(getenv func(string) string) []string {
	var out []string

	for _, name := range envLocaleVars {
		val := getenv(name)
		if val == "" {
			continue
		}

		for _, entry := range strings.Split(val, ":") {
			if tag := posixToBCP47(entry); tag != "" {
				out = append(out, tag)
			}
		}

		// Only LANGUAGE may name several; the first set variable wins otherwise.
		if len(out) > 0 {
			break
		}
	}

	return out
}

// posixToBCP47 converts a POSIX locale name such as "pt_BR.UTF-8@euro" to "pt-BR".
func posixToBCP47(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}

	if name == "" || name == "C" || name == "POSIX" {
		return ""
	}

	return strings.ReplaceAll(name, "_", "-")
}
