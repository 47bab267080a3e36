// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package log configures the process-wide slog logger and carries
// request-scoped attributes through the context.
package log

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey string

const slogFields ctxKey = "slog_fields"

type contextHandler struct {
	slog.Handler
}

// Handle adds the attributes stored in the context to the record before
// delegating to the underlying handler.
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	return h.Handler.Handle(ctx, r)
}

// AppendCtx adds an slog attribute to the provided context so that it is
// included in every record created with that context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		v = append(v, attr)
		return context.WithValue(parent, slogFields, v)
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// InitStructuredLogConfig installs a JSON slog handler as the default
// logger. The level is taken from LOG_LEVEL and source locations are
// added when LOG_ADD_SOURCE is "true".
func InitStructuredLogConfig() {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: os.Getenv("LOG_ADD_SOURCE") == "true",
	}

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	}

	handler := contextHandler{slog.NewJSONHandler(os.Stdout, opts)}
	slog.SetDefault(slog.New(handler))
}
