// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Global exposes the process configuration.
var Global Config

// Config holds the application configuration.
type Config struct {
	Build buildInfo `yaml:"-"`

	Catalog struct {
		// Domain is the gettext domain loaded from <Directory>/<locale>.po.
		Domain string `env:"BRACEFMT_DOMAIN,overwrite" yaml:"domain"`
		// Directory holds the .po catalogs, relative to the catalog filesystem root.
		Directory string `env:"BRACEFMT_CATALOG_DIR,overwrite" yaml:"directory"`
	} `yaml:"catalog"`

	Cache struct {
		Enabled  bool `env:"BRACEFMT_CACHE,overwrite" yaml:"enabled"`
		Size     int  `env:"BRACEFMT_CACHE_SIZE,overwrite" yaml:"cacheSize"`
		Compress bool `env:"BRACEFMT_CACHE_COMPRESS,overwrite" yaml:"compress"`
	} `yaml:"cache"`

	Log struct {
		Level   string   `env:"BRACEFMT_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"BRACEFMT_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"BRACEFMT_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`

	Internationalization struct {
		// BaseLocale is the language msgids are written in.
		BaseLocale string `env:"BRACEFMT_BASE_LOCALE,overwrite" yaml:"baseLocale"`

		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"BRACEFMT_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`

		// LogDivergence logs a warning, once per locale+key, when a translation
		// does not format with the arguments of its msgid.
		LogDivergence bool `env:"BRACEFMT_LOG_DIVERGENCE,overwrite" yaml:"logDivergence"`
	} `yaml:"internationalization"`

	Lint struct {
		// Concurrency bounds the number of catalogs checked at once.
		Concurrency int `env:"BRACEFMT_LINT_CONCURRENCY,overwrite" yaml:"concurrency"`
		// FailOnWarnings makes pocheck exit non-zero on warnings as well as errors.
		FailOnWarnings bool `env:"BRACEFMT_LINT_FAIL_ON_WARNINGS,overwrite" yaml:"failOnWarnings"`
	} `yaml:"lint"`

	Development struct {
		InDevelopment bool `env:"BRACEFMT_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`
}

// LoadConfig loads the configuration from various sources.
//
// Precedence, lowest first: defaults, YAML file, .env file, environment.
// Flags used by the calling command must be defined before LoadConfig,
// which parses the command line if that has not happened yet.
func (cfg *Config) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (BRACEFMT_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("BRACEFMT_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./bracefmt.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
