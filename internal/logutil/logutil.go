package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

const LevelTrace slog.Level = -8

// NewLogger returns a text logger that prints TRACE for LevelTrace and
// trims source paths to the file name.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if attr.Value.Any().(slog.Level) == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}

// Trace logs msg at LevelTrace on the default logger, attributed to the
// caller.
func Trace(msg string, args ...any) {
	emit(nil, msg, args)
}

// Tracer returns a Trace that prepends attrs to every record. Records are
// attributed to the caller of the returned func.
func Tracer(attrs ...any) func(msg string, args ...any) {
	return func(msg string, args ...any) {
		emit(attrs, msg, args)
	}
}

// emit must be called directly by the func whose caller is the source.
func emit(attrs []any, msg string, args []any) {
	ctx := context.Background()
	logger := slog.Default()
	if !logger.Enabled(ctx, LevelTrace) {
		return
	}

	var pcs [1]uintptr
	// skip runtime.Callers, emit, and Trace or the Tracer closure
	runtime.Callers(3, pcs[:])
	record := slog.NewRecord(time.Now(), LevelTrace, msg, pcs[0])
	record.Add(attrs...)
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}
