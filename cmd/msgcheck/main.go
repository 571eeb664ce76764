// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command msgcheck reports i18n message ids that do not validate against
// the arguments passed with them.
//
// Run it directly or through go vet:
//
//	go run ./cmd/msgcheck ./...
//	go vet -vettool=$(which msgcheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"codeberg.org/bracefmt/bracefmt/analysis/msgcheck"
)

func main() {
	singlechecker.Main(msgcheck.Analyzer)
}
