// log предоставляет request-scoped логгер в context.Context.
//
// Паттерн: транспортный слой кладёт логгер через Into (обычно уже
// с request_id), нижние слои достают его через From и не зависят от
// глобального состояния.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста.
// Если логгер не был положен — возвращает slog.Default(),
// чтобы вызывающий код никогда не получал nil.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
