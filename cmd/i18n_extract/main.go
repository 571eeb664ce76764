// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18n_extract writes the gettext template (.pot) for every constant
// message id passed to package i18n in the module.
//
// Entries of the default domain go to the -o file; entries of other domains
// go to <dir of -o>/<domain>/<domain>.pot. Message ids that do not validate
// against their arguments are reported and no file is written.
package main

import (
	"flag"
	"go/ast"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"codeberg.org/bracefmt/bracefmt/analysis/msgcheck"
	"codeberg.org/bracefmt/bracefmt/config"
	"codeberg.org/bracefmt/bracefmt/core/audit"
)

func main() {
	audit.SetDefaultLogger()

	outPath := flag.String("o", filepath.Join("po", config.DefaultDomain+".pot"), "output file")
	flag.Parse()

	logger := audit.Sys("i18n_extract")

	wd, err := os.Getwd()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to get working directory")
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	// templ-generated files must exist on disk before this runs.
	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, patterns...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load packages")
	}

	if packages.PrintErrors(pkgs) > 0 {
		logger.Fatal().Msg("Failed to load packages due to errors")
	}

	cat := newCatalogs(findProjectRoot(wd))

	invalid := 0

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		f := &msgcheck.Finder{
			Info: p.TypesInfo,
			Emit: func(m msgcheck.Message) {
				for _, d := range msgcheck.Check(m) {
					invalid++

					logger.Error().
						Str("pos", p.Fset.Position(d.Pos).String()).
						Msg(d.Message)
				}

				cat.add(p.Fset, m)
			},
		}

		for _, file := range p.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				f.Visit(n)

				return true
			})
		}
	}

	if invalid > 0 {
		logger.Fatal().Int("count", invalid).Msg("Invalid message ids, not writing templates")
	}

	version := detectVersion()

	for domain, entries := range cat.domains {
		path := *outPath
		if domain != "" {
			path = filepath.Join(filepath.Dir(*outPath), domain, domain+".pot")
		}

		var b strings.Builder

		writePOT(&b, version, entries)

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			logger.Fatal().Err(err).Msg("Failed to create output directory")
		}

		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec
			logger.Fatal().Err(err).Str("path", path).Msg("Failed to write output file")
		}

		logger.Info().
			Str("path", path).
			Int("entries", len(entries)).
			Msg("Wrote template")
	}
}

// catalogs collects references per domain.
type catalogs struct {
	projectRoot string
	domains     map[string]map[key][]ref
}

func newCatalogs(projectRoot string) *catalogs {
	return &catalogs{
		projectRoot: projectRoot,
		domains:     map[string]map[key][]ref{"": {}},
	}
}

// add records a reference to a msgid, normalising the file path relative
// to the computed project root.
func (c *catalogs) add(fset *token.FileSet, m msgcheck.Message) {
	p := fset.Position(m.Pos)

	file := p.Filename
	if rel, err := filepath.Rel(c.projectRoot, file); err == nil {
		file = rel
	}

	refs, ok := c.domains[m.Domain]
	if !ok {
		refs = map[key][]ref{}
		c.domains[m.Domain] = refs
	}

	k := key{ctx: m.Context, id: m.ID, plural: m.Plural}

	refs[k] = append(refs[k], ref{file: filepath.ToSlash(file), line: p.Line})
}

// detectVersion resolves a human-friendly version string using git describe.
// Falls back to "dev" when git is unavailable or this is not a git checkout.
func detectVersion() string {
	cmd := exec.Command("git", "describe", "--tags", "--always", "--dirty")

	out, err := cmd.Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

// findProjectRoot attempts to find a stable root directory for source references.
// Preference order:
//  1. git toplevel directory
//  2. nearest parent directory that contains go.mod
//  3. the provided working directory
func findProjectRoot(wd string) string {
	if root := gitTopLevel(wd); root != "" {
		return root
	}

	if root := nearestGoModDir(wd); root != "" {
		return root
	}

	return wd
}

func gitTopLevel(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	cmd.Dir = wd

	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return ""
	}

	return filepath.Clean(root)
}

func nearestGoModDir(start string) string {
	dir := filepath.Clean(start)
	for {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}
