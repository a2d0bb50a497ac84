package logging

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	return newLogger(os.Stderr, cfg.Debug, os.Getenv("KEEPER_LOG_LEVEL"))
}

func newLogger(w io.Writer, debug bool, levelName string) *slog.Logger {
	level := parseLevel(levelName)
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time in non-debug mode for cleaner output
			if a.Key == slog.TimeKey && !debug {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(val string) slog.Level {
	switch strings.ToLower(val) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	if idx := strings.Index(file, "campaign-keeper/"); idx != -1 {
		return file[idx+len("campaign-keeper/"):]
	}
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/internal/"); idx != -1 {
		if strings.HasPrefix(file, f[:idx+1]) {
			return file[idx+1:]
		}
	}
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}
