package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/repocache/pkg/domain/types"
)

type ctxRunIDKey struct{}

// CtxRunID returns the ID of the pipeline run bound to ctx. A new ID is issued
// and bound to the returned context when ctx has none, so the first caller of
// a run decides its ID and everything downstream reports the same one.
func CtxRunID(ctx context.Context) (types.RunID, context.Context) {
	if id, ok := ctx.Value(ctxRunIDKey{}).(types.RunID); ok {
		return id, ctx
	}

	newID := types.NewRunID()
	return newID, context.WithValue(ctx, ctxRunIDKey{}, newID)
}

type ctxLoggerKey struct{}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger bound by With, or the default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}

// TimeFunc is the clock of a run. Report timestamps come from it.
type TimeFunc func() time.Time

// CtxTime returns now by the clock bound to ctx, or by the wall clock
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// InheritContextValues copies run ID and clock of src into dst. The logger is not copied.
func InheritContextValues(dst, src context.Context) context.Context {
	if runID, ok := src.Value(ctxRunIDKey{}).(types.RunID); ok {
		dst = context.WithValue(dst, ctxRunIDKey{}, runID)
	}
	if timeFunc, ok := src.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = context.WithValue(dst, ctxTimeKey{}, timeFunc)
	}
	return dst
}
