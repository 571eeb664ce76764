package i18n

import "context"

type MsgKey string

func (s MsgKey) Tr(ctx context.Context) string { return string(s) }

type UserError struct{ msg string }

func (e *UserError) Error() string { return e.msg }

func NewUserError(ctx context.Context, msgid string, args ...any) *UserError { return nil }

func Tr(ctx context.Context, msgid string, args ...any) string { return "" }

func TrC(ctx context.Context, contextKey, msgid string, args ...any) string { return "" }

func TrD(ctx context.Context, domain, msgid string, args ...any) string { return "" }

func TrN(ctx context.Context, singular, plural string, n int, args ...any) string { return "" }

func TrNC(ctx context.Context, contextKey, singular, plural string, n int, args ...any) string {
	return ""
}

func TrDN(ctx context.Context, domain, singular, plural string, n int, args ...any) string {
	return ""
}
