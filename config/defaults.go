// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

const (
	// DefaultDomain is the gettext domain of the bundled catalogs.
	DefaultDomain = "bracefmt"

	defaultCacheSize       = 256
	defaultLintConcurrency = 4
)

// SetDefaults populates the configuration with default values.
func (cfg *Config) SetDefaults() {
	cfg.Catalog.Domain = DefaultDomain
	cfg.Catalog.Directory = "po"

	cfg.Cache.Enabled = true
	cfg.Cache.Size = defaultCacheSize
	cfg.Cache.Compress = false

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Internationalization.BaseLocale = "en"
	cfg.Internationalization.StrictMissingKeys = false
	cfg.Internationalization.LogDivergence = true

	cfg.Lint.Concurrency = defaultLintConcurrency
	cfg.Lint.FailOnWarnings = false

	cfg.Development.InDevelopment = false
}
