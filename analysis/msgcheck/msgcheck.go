// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package msgcheck defines an Analyzer that checks constant message ids passed
to package i18n against the arguments passed with them.

A message id that does not validate would make every translation of it fall
back to the unformatted message id at run time, so it is reported where the
literal is written:

	i18n.Tr(ctx, "{} of {} files", n) // 2 positional arguments in format string, but there is 1 argument

Calls that spread a slice with "..." are not checked.
*/
package msgcheck

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"codeberg.org/bracefmt/bracefmt/format"
)

const doc = `check i18n message ids against their arguments

Each constant msgid (and msgid_plural) passed to i18n.Tr, TrC, TrD, TrN,
TrNC, TrDN, NewUserError or converted to i18n.MsgKey must be a valid brace
template with exactly one "{}" per argument, and every "{N}" must refer to
an argument.`

// Analyzer reports message ids that do not validate.
var Analyzer = &analysis.Analyzer{
	Name:     "msgcheck",
	Doc:      doc,
	URL:      "https://pkg.go.dev/codeberg.org/bracefmt/bracefmt/analysis/msgcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	f := &Finder{
		Info: pass.TypesInfo,
		Emit: func(m Message) {
			for _, d := range Check(m) {
				pass.Report(d)
			}
		},
	}

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.CompositeLit)(nil),
	}

	insp.Preorder(nodeFilter, f.Visit)

	return nil, nil
}

// Check validates m and returns a diagnostic per invalid form.
func Check(m Message) []analysis.Diagnostic {
	if m.Args == UnknownArgs {
		return nil
	}

	var out []analysis.Diagnostic

	if _, err := format.Validate(m.ID, m.Args); err != nil {
		out = append(out, diagnostic(m.Pos, err))
	}

	if m.PluralPos.IsValid() {
		if _, err := format.Validate(m.Plural, m.Args); err != nil {
			out = append(out, diagnostic(m.PluralPos, err))
		}
	}

	return out
}

func diagnostic(pos token.Pos, err error) analysis.Diagnostic {
	return analysis.Diagnostic{Pos: pos, Category: "format", Message: err.Error()}
}
