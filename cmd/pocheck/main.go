// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command pocheck reports catalogue translations that do not format with
// the arguments of their msgid, as a YAML report on standard output.
//
// It exits with status 1 when errors are found, or warnings too when
// lint.failOnWarnings is set.
//
// Usage:
//
//	pocheck [-config bracefmt.yaml] [dir]
//
// dir defaults to the configured catalog directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"codeberg.org/bracefmt/bracefmt/config"
	"codeberg.org/bracefmt/bracefmt/core/audit"
	"codeberg.org/bracefmt/bracefmt/core/catalog"
)

func main() {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir := config.Global.Catalog.Directory
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	code, err := run(ctx, os.Stdout, os.DirFS("."), dir, config.Global)
	if err != nil {
		log.Error().Err(err).Msg("Catalogue check failed")
	}

	stop()
	os.Exit(code)
}

// run lints dir and writes the report to w, returning the exit status.
func run(ctx context.Context, w io.Writer, fsys fs.FS, dir string, cfg config.Config) (int, error) {
	report, err := catalog.Lint(ctx, fsys, dir, catalog.Options{Concurrency: cfg.Lint.Concurrency})
	if err != nil {
		return 2, err
	}

	if err := report.WriteYAML(w); err != nil {
		return 2, fmt.Errorf("failed to write report: %w", err)
	}

	errs, warns := report.Count(catalog.SeverityError), report.Count(catalog.SeverityWarning)

	log.Info().
		Int("files", report.Files).
		Int("entries", report.Entries).
		Int("errors", errs).
		Int("warnings", warns).
		Msg("Checked catalogues")

	if errs > 0 || (cfg.Lint.FailOnWarnings && warns > 0) {
		return 1, nil
	}

	return 0, nil
}
