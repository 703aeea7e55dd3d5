package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds logger configuration
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or file path
}

var (
	// level is shared by every handler built here, so level changes apply
	// without rebuilding the handler.
	level = new(slog.LevelVar)

	mu       sync.Mutex
	format   = "text"
	output   io.Writer = os.Stdout
	logFile  *os.File
	useColor bool

	current atomic.Pointer[slog.Logger]
)

func init() {
	useColor = isTerminal(os.Stdout)
	rebuildLocked()
}

// ParseLevel maps DEBUG, INFO, WARN or ERROR, in any case, to a slog level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// rebuildLocked swaps in a handler for the current output and format.
// Callers hold mu, except init.
func rebuildLocked() {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(output, opts)
	} else {
		h = newTextHandler(output, opts, useColor)
	}
	current.Store(slog.New(h))
}

// Init initializes the logger with the given configuration.
// Output can be "stdout", "stderr", or a file path. Empty fields keep their
// current value. A log file opened by a previous Init is closed once it is
// replaced.
func Init(cfg Config) error {
	if cfg.Output != "" {
		w, color, f, err := openOutput(cfg.Output)
		if err != nil {
			return err
		}

		mu.Lock()
		previous := logFile
		output, useColor, logFile = w, color, f
		rebuildLocked()
		mu.Unlock()

		if previous != nil && previous != f {
			_ = previous.Close()
		}
	}

	if cfg.Level != "" {
		SetLevel(cfg.Level)
	}
	if cfg.Format != "" {
		SetFormat(cfg.Format)
	}
	return nil
}

func openOutput(name string) (io.Writer, bool, *os.File, error) {
	switch strings.ToLower(name) {
	case "stdout":
		return os.Stdout, isTerminal(os.Stdout), nil, nil
	case "stderr":
		return os.Stderr, isTerminal(os.Stderr), nil, nil
	}

	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, false, nil, fmt.Errorf("failed to open log file %q: %w", name, err)
	}
	return f, false, f, nil
}

// InitWithWriter initializes the logger with a custom io.Writer.
// This is primarily useful for testing.
func InitWithWriter(w io.Writer, lvl, fmtName string, enableColor bool) {
	mu.Lock()
	output = w
	useColor = enableColor
	rebuildLocked()
	mu.Unlock()

	if lvl != "" {
		SetLevel(lvl)
	}
	if fmtName != "" {
		SetFormat(fmtName)
	}
}

// SetLevel sets the minimum log level. Unknown names are ignored.
func SetLevel(name string) {
	if l, ok := ParseLevel(name); ok {
		level.Set(l)
	}
}

// SetFormat switches between "text" and "json". Unknown names are ignored.
func SetFormat(name string) {
	name = strings.ToLower(name)
	if name != "text" && name != "json" {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if format != name {
		format = name
		rebuildLocked()
	}
}

// Enabled reports whether records at l are currently emitted.
func Enabled(l slog.Level) bool {
	return l >= level.Level()
}

func emit(ctx context.Context, l slog.Level, msg string, args []any) {
	if !Enabled(l) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	} else {
		args = appendContextFields(ctx, args)
	}
	current.Load().Log(ctx, l, msg, args...)
}

// Debug logs at debug level with structured fields
// Usage: Debug("message", "key1", value1, "key2", value2)
func Debug(msg string, args ...any) { emit(context.Background(), slog.LevelDebug, msg, args) }

// Info logs at info level with structured fields
func Info(msg string, args ...any) { emit(context.Background(), slog.LevelInfo, msg, args) }

// Warn logs at warn level with structured fields
func Warn(msg string, args ...any) { emit(context.Background(), slog.LevelWarn, msg, args) }

// Error logs at error level with structured fields
func Error(msg string, args ...any) { emit(context.Background(), slog.LevelError, msg, args) }

// DebugCtx logs at debug level, prefixed with the LogContext fields of ctx.
func DebugCtx(ctx context.Context, msg string, args ...any) {
	emit(ctx, slog.LevelDebug, msg, args)
}

// InfoCtx logs at info level with context
func InfoCtx(ctx context.Context, msg string, args ...any) {
	emit(ctx, slog.LevelInfo, msg, args)
}

// WarnCtx logs at warn level with context
func WarnCtx(ctx context.Context, msg string, args ...any) {
	emit(ctx, slog.LevelWarn, msg, args)
}

// ErrorCtx logs at error level with context
func ErrorCtx(ctx context.Context, msg string, args ...any) {
	emit(ctx, slog.LevelError, msg, args)
}

// appendContextFields prepends the LogContext fields of ctx to args so they
// appear first in output.
func appendContextFields(ctx context.Context, args []any) []any {
	lc := FromContext(ctx)
	if lc == nil {
		return args
	}

	fields := [...]struct{ key, value string }{
		{KeyTraceID, lc.TraceID},
		{KeySpanID, lc.SpanID},
		{KeyRequestID, lc.RequestID},
		{KeyAttemptID, lc.AttemptID},
		{KeyOperation, lc.Operation},
		{KeyAuth, lc.AuthType},
		{KeyPlatform, lc.Platform},
		{KeyClientIP, lc.ClientIP},
	}

	out := make([]any, 0, 2*len(fields)+len(args))
	for _, f := range fields {
		if f.value != "" {
			out = append(out, f.key, f.value)
		}
	}
	return append(out, args...)
}

// With returns a new slog.Logger with additional attributes
func With(args ...any) *slog.Logger {
	return current.Load().With(args...)
}

// Duration returns duration since start time in milliseconds
func Duration(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
