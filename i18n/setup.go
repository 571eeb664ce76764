// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"codeberg.org/bracefmt/bracefmt/assets"
	"codeberg.org/bracefmt/bracefmt/config"
	"codeberg.org/bracefmt/bracefmt/core/lrucache"
)

var errNoCatalogFS = errors.New("no catalog filesystem configured")

var (
	// poDomain is the default gettext domain, loaded from <dir>/<locale>.po.
	poDomain = config.DefaultDomain

	// localesByTag maps canonical BCP 47 tags, for example
	// "en", "ja", "pt-BR", to their loaded gotext.Locale.
	localesByTag map[string]*gotext.Locale

	// supportedTags holds the list of BCP 47 tags for which a locale was successfully loaded.
	supportedTags []language.Tag

	// matcher is a private [language.Matcher] derived from the loaded locales.
	matcher language.Matcher

	// divergent remembers translations that failed to format with the
	// arguments of their msgid. Nil when caching is disabled.
	divergent *lrucache.Cache
)

// Setup initialises package i18n by loading gettext catalogues from [assets.FS]
// and constructing a language matcher. See [SetupFS].
func Setup() error {
	if assets.FS == nil {
		return errNoCatalogFS
	}

	return SetupFS(assets.FS)
}

// SetupFS loads the catalogues found in fsys under the configured catalog
// directory. The expected layout is:
//
//	po/<locale>.po           default domain
//	po/<domain>/<locale>.po  additional domains, for use with TrD and TrDN
//
// The <locale> filename part may use hyphens or underscores, for example "pt-BR.po" or "pt_BR.po",
// and is normalised to a canonical BCP 47 language tag for matching. Template files (*.pot)
// are ignored. The base locale is always included and acts as the default fallback.
//
// Calling SetupFS again replaces the previously loaded locales, matcher and caches.
func SetupFS(fsys fs.FS) error {
	Logger = log.With().Str("sys", "i18n").Logger()

	cfg := config.Global

	poDomain = cfg.Catalog.Domain
	if poDomain == "" {
		poDomain = config.DefaultDomain
	}

	dir := cfg.Catalog.Directory
	if dir == "" {
		dir = "po"
	}

	baseTag = language.Make(BaseLocale)
	if cfg.Internationalization.BaseLocale != "" {
		if t, err := language.Parse(cfg.Internationalization.BaseLocale); err == nil {
			baseTag = t
		}
	}

	resetCaches()

	if cfg.Cache.Enabled {
		c, err := lrucache.New(cfg.Cache.Size, cfg.Cache.Compress)
		if err != nil {
			return fmt.Errorf("failed to create divergence cache: %w", err)
		}

		divergent = c
	}

	localesByTag = make(map[string]*gotext.Locale)
	supportedTags = nil
	matcher = nil

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read %s directory: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if err := loadDomain(fsys, dir, entry.Name()); err != nil {
				return err
			}

			continue
		}

		loadCatalog(fsys, dir, entry.Name(), poDomain)
	}

	tagsList := make([]language.Tag, 0, len(localesByTag))
	for canonical := range localesByTag {
		tagsList = append(tagsList, language.Make(canonical))
	}

	// Build a private matcher from the loaded languages.
	// baseTag is first to make it the default fallback for matching.
	all := make([]language.Tag, 0, len(tagsList)+1)

	all = append(all, baseTag)

	// Sort loaded tags by their canonical string.
	sort.Slice(tagsList, func(i, j int) bool { return tagsList[i].String() < tagsList[j].String() })

	for _, t := range tagsList {
		if t == baseTag {
			continue
		}

		all = append(all, t)
	}

	matcher = language.NewMatcher(all)
	supportedTags = all

	return nil
}

// loadDomain loads every catalogue in dir/domain under that domain.
func loadDomain(fsys fs.FS, dir, domain string) error {
	entries, err := fs.ReadDir(fsys, path.Join(dir, domain))
	if err != nil {
		return fmt.Errorf("failed to read domain %s: %w", domain, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		loadCatalog(fsys, path.Join(dir, domain), entry.Name(), domain)
	}

	return nil
}

// loadCatalog parses dir/fileName into the locale named by the file.
func loadCatalog(fsys fs.FS, dir, fileName, domain string) {
	if !strings.HasSuffix(fileName, ".po") {
		return
	}

	localeName := strings.TrimSuffix(fileName, ".po")

	// Accept both underscore and hyphen.
	// Convert to a canonical BCP 47 string for matching and display.
	t, err := language.Parse(strings.ReplaceAll(localeName, "_", "-"))
	if err != nil {
		Logger.Warn().Err(err).Str("file", fileName).Msg("Skipping invalid locale file")

		return
	}

	canonical := t.String()

	po := gotext.NewPoFS(fsys)
	po.ParseFile(path.Join(dir, fileName))

	loc, ok := localesByTag[canonical]
	if !ok {
		loc = gotext.NewLocale("", canonical) // Base path is unused when manually adding translators.
		localesByTag[canonical] = loc
	}

	loc.AddTranslator(domain, po)

	Logger.Info().
		Str("locale", canonical).
		Str("domain", domain).
		Msg("Loaded locale")
}

// resetCaches clears all per-process state derived from previously loaded catalogues.
func resetCaches() {
	missingKeyOnce = sync.Map{}
	divergenceOnce = sync.Map{}
	compiled = sync.Map{}
	divergent = nil
}
