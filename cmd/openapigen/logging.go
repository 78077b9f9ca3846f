package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openapigen/openapigen/parser"
)

// Log output formats accepted by --log-format.
const (
	logFormatText    = "text"
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

// parseLevel maps a --log-level value onto a slog level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", s)
	}
}

// newLogger builds the logger for one run. The returned function flushes
// buffered output and must be called before exit.
func newLogger(level, format string, w io.Writer) (parser.Logger, func(), error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case logFormatText:
		return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(w, opts))), func() {}, nil
	case logFormatJSON:
		return parser.NewSlogAdapter(slog.New(slog.NewJSONHandler(w, opts))), func() {}, nil
	case logFormatConsole:
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			zapLevel(lvl),
		)
		sugar := zap.New(core).Sugar()
		return &zapAdapter{logger: sugar}, func() { _ = sugar.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("invalid log format %q (valid: text, json, console)", format)
	}
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// zapAdapter wraps a *zap.SugaredLogger to implement parser.Logger.
type zapAdapter struct {
	logger *zap.SugaredLogger
}

func (z *zapAdapter) Debug(msg string, attrs ...any) { z.logger.Debugw(msg, attrs...) }
func (z *zapAdapter) Info(msg string, attrs ...any)  { z.logger.Infow(msg, attrs...) }
func (z *zapAdapter) Warn(msg string, attrs ...any)  { z.logger.Warnw(msg, attrs...) }
func (z *zapAdapter) Error(msg string, attrs ...any) { z.logger.Errorw(msg, attrs...) }

func (z *zapAdapter) With(attrs ...any) parser.Logger {
	return &zapAdapter{logger: z.logger.With(attrs...)}
}

var _ parser.Logger = (*zapAdapter)(nil)
