// Package logging defines a minimal structured-logging interface used across
// the project. Implementations wrap log/slog and zap.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "starting server", "addr", addr, "mode", mode)
type Logger interface {
	// Debug logs diagnostic detail, usually disabled in production.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported values for the server "log_mode" setting.
const (
	ModeJSON    = "json"
	ModeText    = "text"
	ModeZapDev  = "zap-dev"
	ModeZapProd = "zap-prod"
)

// New builds a Logger for the given mode. The slog modes write to stdout;
// the zap modes use zap's development or production presets.
func New(mode string) (Logger, error) {
	mode = strings.ToLower(mode)
	switch mode {
	case "", ModeJSON:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))), nil
	case ModeText:
		return NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil))), nil
	case ModeZapDev, ModeZapProd:
		cfg := zap.NewDevelopmentConfig()
		if mode == ModeZapProd {
			cfg = zap.NewProductionConfig()
		}
		l, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("zap build: %w", err)
		}
		return NewZapLogger(l.Sugar()), nil
	default:
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}
}
