package cli

import (
	"context"
	"log/slog"

	"github.com/bjaus/mdtable/internal/config"
)

type ctxKey string

const (
	settingsKey ctxKey = "settings"
	loggerKey   ctxKey = "logger"
)

func withRuntime(ctx context.Context, s config.Settings, log *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, settingsKey, s)
	return context.WithValue(ctx, loggerKey, log)
}

func settingsFrom(ctx context.Context) config.Settings {
	if s, ok := ctx.Value(settingsKey).(config.Settings); ok {
		return s
	}
	return config.Settings{}
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
