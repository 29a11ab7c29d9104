package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelDebug = slog.Level(-4)
	LevelInfo  = slog.Level(0)
	LevelWarn  = slog.Level(4)
	LevelError = slog.Level(8)
)

func InitLogging(lvl string) {
	slog.SetDefault(NewLogger(os.Stdout, lvl))
}

func NewLogger(w io.Writer, lvl string) *slog.Logger {
	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: toLevel(lvl)})
	return slog.New(textHandler)
}

func toLevel(lvl string) slog.Level {
	levels := map[string]slog.Level{
		"debug": LevelDebug,
		"info":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
	}
	if level, ok := levels[strings.ToLower(lvl)]; ok {
		return level
	}
	return LevelInfo
}
