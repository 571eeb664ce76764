package a

import (
	"context"

	tr "i18n"
)

const greeting = "Hello, {}!"

type page struct {
	Title MsgAlias
	Body  string
}

type MsgAlias = tr.MsgKey

func label(k tr.MsgKey) string { return string(k) }

func labels(ks ...tr.MsgKey) {}

func calls(ctx context.Context, n int, name string, args []any) {
	tr.Tr(ctx, "plain")
	tr.Tr(ctx, greeting, name)
	tr.Tr(ctx, "Hello, "+"{}!", name)
	tr.Tr(ctx, "{} and {}", name) // want `2 positional arguments in format string, but there is 1 argument`
	tr.Tr(ctx, "{}", name, name)  // want `1 positional argument in format string, but there are 2 arguments`
	tr.Tr(ctx, "{")               // want "unmatched `{` in format string"
	tr.Tr(ctx, "done}")           // want "unmatched `}` in format string"
	tr.Tr(ctx, "{{literal}}")
	tr.Tr(ctx, "{2} {}", name) // want `invalid reference to positional argument 2 \(there is 1 argument\)`
	tr.Tr(ctx, "{0}{}", name)
	tr.Tr(ctx, "{0}", name) // want `0 positional arguments in format string, but there is 1 argument`
	tr.Tr(ctx, "{} {}", args...)
	tr.Tr(ctx, name, n)

	tr.TrC(ctx, "menu", "Open {}", name)
	tr.TrC(ctx, "menu", "Open {}") // want `1 positional argument in format string, but no arguments were given`
	tr.TrC(ctx, name, "Open {}")

	tr.TrD(ctx, "errors", "file {} not found", name)
	tr.TrD(ctx, "errors", "file {} not found") // want `1 positional argument in format string, but no arguments were given`

	tr.TrN(ctx, "{} file", "{} files", n, n)
	tr.TrN(ctx, "One file", "{} files", n, n)  // want `0 positional arguments in format string, but there is 1 argument`
	tr.TrN(ctx, "{} file", "{} files {", n, n) // want "unmatched `{` in format string"

	tr.TrNC(ctx, "status", "{} item", "{} items", n, n)
	tr.TrNC(ctx, "status", "{} item", "{} items", n) // want `1 positional argument in format string, but no arguments were given` `1 positional argument in format string, but no arguments were given`

	tr.TrDN(ctx, "errors", "{} error", "{} errors", n, n)
	tr.TrDN(ctx, "errors", "{} error", "{} errors", n, n, n) // want `1 positional argument in format string, but there are 2 arguments` `1 positional argument in format string, but there are 2 arguments`

	_ = tr.NewUserError(ctx, "bad {} {}", name) // want `2 positional arguments in format string, but there is 1 argument`
	_ = tr.NewUserError(ctx, "ok {}", name)
}

func keys() {
	_ = tr.MsgKey("Settings")
	_ = tr.MsgKey("Use {{ braces }}")
	_ = tr.MsgKey("Hi {}") // want `1 positional argument in format string, but no arguments were given`

	_ = label("Open {")   // want "unmatched `{` in format string"
	labels("ok", "bad }") // want "unmatched `}` in format string"

	_ = []tr.MsgKey{"fine", "{}"}        // want `1 positional argument in format string, but no arguments were given`
	_ = map[tr.MsgKey]string{"{0}": "x"} // want `invalid reference to positional argument 0 \(no arguments were given\)`
	_ = page{Title: "Title {"}           // want "unmatched `{` in format string"
	_ = page{"Title }", "body {"}        // want "unmatched `}` in format string"
	_ = &page{Body: "{"}
}
