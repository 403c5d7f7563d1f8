package core

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
	AwaitOptionKey  OptionKey = "await_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

type AwaitOptions struct {
	// Inline awaits pending stage results on the caller's goroutine
	// instead of returning a Future for the rest of the pipeline.
	Inline bool
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithInlineAwait(ctx context.Context, inline bool) context.Context {
	return context.WithValue(ctx, AwaitOptionKey, AwaitOptions{Inline: inline})
}

// Logger returns the context logger, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}

func IsInlineAwaitEnabled(ctx context.Context, defaultInline bool) bool {
	options, ok := ctx.Value(AwaitOptionKey).(AwaitOptions)
	if ok {
		return options.Inline
	}
	return defaultInline
}
