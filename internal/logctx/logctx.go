// logctx — прокидывание request-scoped slog-логгера через контекст.
package logctx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With кладёт логгер в контекст.
func With(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста; если его там нет — slog.Default().
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}
