// Package logger wraps zap behind a small facade with two rendering modes:
// a human-oriented console layout ("pretty") and single-line JSON ("compact")
// for log aggregation. Entries below warn go to stdout, warn and above to
// stderr. The facade is constructed at startup and passed by reference; there
// is no package-level singleton.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/academy-api/pkg/config"
	"github.com/noah-isme/academy-api/pkg/middleware/requestid"
)

const (
	FormatPretty  = "pretty"
	FormatCompact = "compact"
)

// Options configures a Logger. Stdout/Stderr default to the process streams
// and exist so tests can capture output.
type Options struct {
	Level       string
	Format      string
	Color       bool
	Development bool
	Stdout      io.Writer
	Stderr      io.Writer
}

// FromConfig derives logger options from the application config. Development
// mode controls stack-trace inclusion on error entries; production output
// never carries stack traces.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Color:       cfg.Log.Color,
		Development: cfg.IsDevelopment(),
	}
}

// Logger is a leveled structured logger with request/performance helpers.
type Logger struct {
	mu    sync.RWMutex
	zl    *zap.Logger
	level zap.AtomicLevel
	opts  Options
}

// New builds a Logger from options. Unknown levels fall back to info and
// unknown formats to compact.
func New(opts Options) *Logger {
	l := &Logger{level: zap.NewAtomicLevelAt(parseLevel(opts.Level))}
	l.apply(opts)
	return l
}

// NewNop returns a logger that discards everything; used in tests.
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop(), level: zap.NewAtomicLevel()}
}

func (l *Logger) apply(opts Options) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
	}

	var enc zapcore.Encoder
	if opts.Format == FormatPretty {
		if opts.Color {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	threshold := l.level
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return threshold.Enabled(lvl) && lvl < zapcore.WarnLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return threshold.Enabled(lvl) && lvl >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(stdout)), lowPriority),
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(stderr)), highPriority),
	)

	zapOpts := []zap.Option{}
	if opts.Development {
		// Stack traces leak internals; only development builds emit them.
		zapOpts = append(zapOpts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	l.mu.Lock()
	l.zl = zap.New(core, zapOpts...)
	l.opts = opts
	l.mu.Unlock()
}

// Reconfigure rebuilds the logger in place with new options. Safe to call
// while other goroutines are logging.
func (l *Logger) Reconfigure(opts Options) {
	l.level.SetLevel(parseLevel(opts.Level))
	l.apply(opts)
}

// SetLevel adjusts only the threshold, keeping the rendering mode.
func (l *Logger) SetLevel(level string) {
	l.level.SetLevel(parseLevel(level))
}

func (l *Logger) logger() *zap.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.zl
}

func (l *Logger) pretty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.opts.Format == FormatPretty
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.logger().Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.logger().Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.logger().Warn(msg, fields...)
}

// Error logs at error level, attaching the error message when err is non-nil.
// In development mode zap appends a stack trace to every error entry.
func (l *Logger) Error(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	l.logger().Error(msg, fields...)
}

// Request records the outcome of an HTTP request. Responses with a 4xx or
// 5xx status are logged at warn, everything else at info.
func (l *Logger) Request(method, path string, status int, duration time.Duration, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", duration),
	)
	if status >= 400 {
		l.Warn("http_request", fields...)
		return
	}
	l.Info("http_request", fields...)
}

// Success is Info with a decorative marker in pretty mode.
func (l *Logger) Success(msg string, fields ...zap.Field) {
	if l.pretty() {
		msg = "✔ " + msg
	}
	l.Info(msg, fields...)
}

// Failure is Error with a decorative marker in pretty mode.
func (l *Logger) Failure(msg string, err error, fields ...zap.Field) {
	if l.pretty() {
		msg = "✘ " + msg
	}
	l.Error(msg, err, fields...)
}

// Performance classifies an operation's duration as fast, moderate (>100ms)
// or slow (>1s) and logs it, escalating slow operations to warn.
func (l *Logger) Performance(operation string, duration time.Duration, fields ...zap.Field) {
	class := "fast"
	switch {
	case duration > time.Second:
		class = "slow"
	case duration > 100*time.Millisecond:
		class = "moderate"
	}

	fields = append(fields,
		zap.String("operation", operation),
		zap.Duration("duration", duration),
		zap.String("classification", class),
	)

	msg := fmt.Sprintf("performance: %s", operation)
	if class == "slow" {
		l.Warn(msg, fields...)
		return
	}
	l.Info(msg, fields...)
}

// Sync flushes buffered entries, if any.
func (l *Logger) Sync() error {
	return l.logger().Sync()
}

// GinMiddleware returns access-log middleware driven by the Request helper.
func GinMiddleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{zap.String("ip", c.ClientIP())}
		if reqID := requestid.Value(c); reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}

		l.Request(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), fields...)
	}
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
