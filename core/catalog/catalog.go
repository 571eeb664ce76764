// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package catalog checks gettext catalogues for translations that would not
format with the arguments of their msgid.

Package i18n replaces such translations with the msgid at run time; Lint
finds them ahead of time so translators can fix them.
*/
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"codeberg.org/bracefmt/bracefmt/core/audit"
	"codeberg.org/bracefmt/bracefmt/format"
)

// Severity classifies a Finding.
type Severity string

const (
	// SeverityError marks a translation that will be replaced by its msgid.
	SeverityError Severity = "error"
	// SeverityWarning marks a msgid that cannot be checked.
	SeverityWarning Severity = "warning"
)

var ErrNoCatalogs = errors.New("no .po files found")

// Options configures Lint.
type Options struct {
	// Concurrency bounds the number of files parsed at once. Zero or less means one.
	Concurrency int
}

// Finding is a single problem in a catalogue entry.
type Finding struct {
	File        string   `yaml:"file"`
	Locale      string   `yaml:"locale"`
	Context     string   `yaml:"context,omitempty"`
	MsgID       string   `yaml:"msgid"`
	Form        int      `yaml:"form"`
	Translation string   `yaml:"translation,omitempty"`
	Severity    Severity `yaml:"severity"`
	Reason      string   `yaml:"reason"`
}

// Report is the result of Lint.
type Report struct {
	Files    int       `yaml:"files"`
	Entries  int       `yaml:"entries"`
	Findings []Finding `yaml:"findings"`
}

// Count returns the number of findings with severity s.
func (r *Report) Count(s Severity) int {
	n := 0

	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}

	return n
}

// WriteYAML writes the report to w.
func (r *Report) WriteYAML(w io.Writer) error {
	b, err := yaml.MarshalWithOptions(r, yaml.UseLiteralStyleIfMultiline(true))
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = w.Write(b)

	return err
}

// Lint checks every .po file under dir in fsys, including domain
// subdirectories, parsing files concurrently.
func Lint(ctx context.Context, fsys fs.FS, dir string, opts Options) (*Report, error) {
	logger := audit.Sys("catalog")

	var files []string

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(p, ".po") {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogues in %s: %w", dir, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCatalogs, dir)
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var (
		mu     sync.Mutex
		report = &Report{Files: len(files), Findings: []Finding{}}
	)

	for _, file := range files {
		g.Go(func() error {
			entries, findings, err := lintFile(ctx, fsys, file, logger)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			report.Entries += entries
			report.Findings = append(report.Findings, findings...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]
		if a.File != b.File {
			return a.File < b.File
		}

		if a.Context != b.Context {
			return a.Context < b.Context
		}

		if a.MsgID != b.MsgID {
			return a.MsgID < b.MsgID
		}

		return a.Form < b.Form
	})

	return report, nil
}

// lintFile checks one catalogue and returns the number of entries checked.
func lintFile(ctx context.Context, fsys fs.FS, file string, logger zerolog.Logger) (int, []Finding, error) {
	if _, err := fs.Stat(fsys, file); err != nil {
		return 0, nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	po := gotext.NewPoFS(fsys)
	po.ParseFile(file)

	domain := po.GetDomain()

	locale := domain.Language
	if locale == "" {
		locale = strings.TrimSuffix(path.Base(file), ".po")
	}

	c := checker{file: file, locale: locale}

	for _, tr := range domain.GetTranslations() {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}

		c.check("", tr)
	}

	for msgctxt, trs := range domain.GetCtxTranslations() {
		for _, tr := range trs {
			if err := ctx.Err(); err != nil {
				return 0, nil, err
			}

			c.check(msgctxt, tr)
		}
	}

	logger.Debug().
		Str("file", file).
		Str("locale", locale).
		Int("entries", c.entries).
		Int("findings", len(c.findings)).
		Msg("Checked catalogue")

	return c.entries, c.findings, nil
}

type checker struct {
	file, locale string

	entries  int
	findings []Finding
}

// check validates every translated form of tr against the arity of its msgid.
func (c *checker) check(msgctxt string, tr *gotext.Translation) {
	// The header entry.
	if tr.ID == "" {
		return
	}

	forms := translatedForms(tr)
	if len(forms) == 0 {
		return
	}

	// Nothing to substitute and nothing to unescape on either side.
	if !hasBraces(tr.ID, tr.PluralID) && !hasBraces(slices.Collect(maps.Values(forms))...) {
		return
	}

	c.entries++

	finding := Finding{File: c.file, Locale: c.locale, Context: msgctxt, MsgID: tr.ID}

	n, err := format.Arity(tr.ID)
	if err == nil {
		// "{N}" references are not counted by Arity, so the msgid itself
		// may not hold up against n.
		_, err = format.Validate(tr.ID, n)
	}

	if err != nil {
		finding.Severity = SeverityWarning
		finding.Reason = "msgid: " + err.Error()
		c.findings = append(c.findings, finding)

		return
	}

	if tr.PluralID != "" {
		pn, err := format.Arity(tr.PluralID)
		if err != nil {
			finding.Severity = SeverityWarning
			finding.Reason = "msgid_plural: " + err.Error()
			c.findings = append(c.findings, finding)

			return
		}

		if pn != n {
			finding.Severity = SeverityWarning
			finding.Reason = fmt.Sprintf("msgid takes %d arguments but msgid_plural takes %d", n, pn)
			c.findings = append(c.findings, finding)

			return
		}

		if _, err := format.Validate(tr.PluralID, n); err != nil {
			finding.Severity = SeverityWarning
			finding.Reason = "msgid_plural: " + err.Error()
			c.findings = append(c.findings, finding)

			return
		}
	}

	for _, i := range slices.Sorted(maps.Keys(forms)) {
		if err := format.Check(forms[i], n); err != nil {
			f := finding
			f.Form = i
			f.Translation = forms[i]
			f.Severity = SeverityError
			f.Reason = err.Error()
			c.findings = append(c.findings, f)
		}
	}
}

// translatedForms returns the non-empty msgstr forms of tr by index.
func translatedForms(tr *gotext.Translation) map[int]string {
	forms := make(map[int]string, len(tr.Trs))

	for i, s := range tr.Trs {
		if s != "" {
			forms[i] = s
		}
	}

	return forms
}

func hasBraces(ss ...string) bool {
	for _, s := range ss {
		if strings.ContainsAny(s, "{}") {
			return true
		}
	}

	return false
}
