// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// validation errors.
var (
	errEmptyDomain          = errors.New("catalog.domain cannot be empty")
	errInvalidDomain        = errors.New("catalog.domain may only contain letters, digits, '.', '_' and '-'")
	errEmptyCatalogDir      = errors.New("catalog.directory cannot be empty")
	errInvalidCacheSize     = errors.New("cache.cacheSize must be positive when the cache is enabled")
	errInvalidLogLevel      = errors.New("invalid log.logLevel")
	errInvalidLogFormat     = errors.New("log.logFormat must be \"console\" or \"json\"")
	errInvalidBaseLocale    = errors.New("invalid internationalization.baseLocale")
	errInvalidLintWorkerCap = errors.New("lint.concurrency must be positive")
)

var domainRegexp = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var logFormats = []string{"console", "json"}

// validateAndSet validates the configuration and normalises some fields.
func (cfg *Config) validateAndSet() error {
	if cfg.Catalog.Domain == "" {
		return errEmptyDomain
	}

	if !domainRegexp.MatchString(cfg.Catalog.Domain) {
		return fmt.Errorf("%w: %q", errInvalidDomain, cfg.Catalog.Domain)
	}

	if cfg.Catalog.Directory == "" {
		return errEmptyCatalogDir
	}

	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return errInvalidCacheSize
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	if !slices.Contains(logFormats, cfg.Log.Format) {
		return errInvalidLogFormat
	}

	tag, err := language.Parse(cfg.Internationalization.BaseLocale)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidBaseLocale, err)
	}

	cfg.Internationalization.BaseLocale = tag.String()

	if cfg.Lint.Concurrency <= 0 {
		return errInvalidLintWorkerCap
	}

	return nil
}
