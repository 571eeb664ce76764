// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Bracefmt translates a message id with the bundled gettext catalogues and
substitutes positional arguments into its brace placeholders.

Usage:

	bracefmt [flags] msgid [args...]

For example:

	$ LANG=ja_JP.UTF-8 bracefmt "{} of {} files copied" 3 10
	10個中3個のファイルをコピーしました
	$ bracefmt -lang de -plural "{} files" -n 2 "{} file" 2
	2 Dateien
	$ bracefmt -validate "{} and {}" one
	2 positional arguments in format string, but there is 1 argument

The language is taken from -lang, or else from LANGUAGE, LC_ALL,
LC_MESSAGES and LANG.
*/
package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"codeberg.org/bracefmt/bracefmt/assets"
	"codeberg.org/bracefmt/bracefmt/config"
	"codeberg.org/bracefmt/bracefmt/core/audit"
	"codeberg.org/bracefmt/bracefmt/format"
	"codeberg.org/bracefmt/bracefmt/i18n"
)

var (
	errNoMsgid = errors.New("missing msgid argument")
	errInvalid = errors.New("msgid does not validate")
)

// embeddedContent holds the bundled catalogues.
//
//go:embed all:po
var embeddedContent embed.FS

// init assigns the embedded filesystem to the exported assets.FS variable.
//
//nolint:gochecknoinits // this is a good use of init()
func init() {
	assets.FS = embeddedContent
}

// options holds the command-line flags.
type options struct {
	lang     string
	domain   string
	context  string
	plural   string
	n        int
	validate bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.lang, "lang", "", "language to translate to, as a BCP 47 tag (default from the environment)")
	fs.StringVar(&o.domain, "domain", "", "gettext domain (default from configuration)")
	fs.StringVar(&o.context, "context", "", "message context (msgctxt)")
	fs.StringVar(&o.plural, "plural", "", "plural message id (msgid_plural)")
	fs.IntVar(&o.n, "n", 1, "count selecting the plural form; pass it again as an argument to print it")
	fs.BoolVar(&o.validate, "validate", false, "only check msgid (and -plural) against the number of arguments")
}

// main is the entry point of the application.
func main() {
	if err := run(os.Stdout); err != nil {
		if errors.Is(err, errInvalid) {
			os.Exit(1)
		}

		log.Fatal().Err(err).Msg("bracefmt failed")
	}
}

func run(w io.Writer) error {
	audit.SetDefaultLogger()

	var opts options

	opts.register(flag.CommandLine)

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if flag.NArg() == 0 {
		flag.Usage()

		return errNoMsgid
	}

	msgid, args := flag.Arg(0), flag.Args()[1:]

	if opts.validate {
		return validate(w, opts, msgid, len(args))
	}

	if err := i18n.Setup(); err != nil {
		return fmt.Errorf("failed to initialize i18n engine: %w", err)
	}

	tag := i18n.DetectEnvLanguage()
	if opts.lang != "" {
		tag = i18n.Match(opts.lang)
	}

	log.Debug().Str("locale", tag.String()).Msg("Selected language")

	_, err := fmt.Fprintln(w, translate(i18n.WithTag(context.Background(), tag), opts, msgid, args))

	return err
}

// translate picks the i18n function matching the given flags.
func translate(ctx context.Context, opts options, msgid string, args []string) string {
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a
	}

	switch {
	case opts.plural != "" && opts.domain != "":
		return i18n.TrDN(ctx, opts.domain, msgid, opts.plural, opts.n, values...)
	case opts.plural != "" && opts.context != "":
		return i18n.TrNC(ctx, opts.context, msgid, opts.plural, opts.n, values...)
	case opts.plural != "":
		return i18n.TrN(ctx, msgid, opts.plural, opts.n, values...)
	case opts.domain != "":
		return i18n.TrD(ctx, opts.domain, msgid, values...)
	case opts.context != "":
		return i18n.TrC(ctx, opts.context, msgid, values...)
	default:
		return i18n.Tr(ctx, msgid, values...)
	}
}

// validate writes "ok" or the reasons msgid and opts.plural fail to validate with n arguments.
func validate(w io.Writer, opts options, msgid string, n int) error {
	forms := []string{msgid}
	if opts.plural != "" {
		forms = append(forms, opts.plural)
	}

	failed := false

	for _, s := range forms {
		if _, err := format.Validate(s, n); err != nil {
			failed = true

			fmt.Fprintf(w, "%q: %v\n", s, err)
		}
	}

	if failed {
		return errInvalid
	}

	_, err := fmt.Fprintln(w, "ok")

	return err
}
