// Package skellog provides the structured logger the straight-skeleton
// driver uses to trace event resolution. It mirrors the wrapper
// mmp-vice/pkg/log builds around log/slog: a thin *Logger that tolerates a
// nil receiver (so callers that never configure logging pay nothing) and,
// when a file is configured, writes through a rotating lumberjack sink
// instead of letting the log grow without bound.
package skellog

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a *slog.Logger. A nil *Logger is valid: Debugf and Infof do
// nothing on it, and Warnf writes to standard error. Skeletonize's default is
// Discard(), which drops everything - logging configuration is the caller's
// concern, not the kernel's.
type Logger struct {
	*slog.Logger
}

// Discard returns a Logger that drops everything. This is the zero-config
// default attached to a Config that never calls WithLogger.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// New builds a Logger at the given level writing JSON records to w.
func New(level slog.Level, w io.Writer) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewRotatingFile builds a Logger writing to path, rotated by lumberjack
// once it exceeds maxSizeMB megabytes. Intended for long-running batch
// skeletonization jobs that would otherwise leave an unbounded debug log.
func NewRotatingFile(level slog.Level, path string, maxSizeMB int) *Logger {
	w := &lumberjack.Logger{
		Filename: path,
		MaxSize:  maxSizeMB,
		MaxAge:   14,
		Compress: true,
	}
	return New(level, w)
}

// Debugf logs at debug level with printf-style formatting. A nil receiver
// is a no-op.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	if l.Logger.Enabled(nil, slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Infof logs at info level with printf-style formatting. A nil receiver is
// a no-op.
func (l *Logger) Infof(format string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	if l.Logger.Enabled(nil, slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(format, args...))
	}
}

// Warnf logs at warn level with printf-style formatting. Unlike Debugf and
// Infof, a nil receiver still writes the message to standard error: spec.md §7
// classifies the conditions this covers (dropped split events) as worth
// surfacing even when the caller didn't opt into a logger.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil || l.Logger == nil {
		fmt.Fprintf(os.Stderr, "skeleton: "+format+"\n", args...)
		return
	}
	l.Logger.Warn(fmt.Sprintf(format, args...))
}
