// Package lib holds small utilities shared across the argmap binaries.
package lib

import (
	"io"
	"log/slog"
	"path/filepath"
)

// ParseSLogLevel parses a level name ("debug", "info", ...) into a
// slog.Level.
func ParseSLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// NiceLogger builds a text slog.Logger that reports source locations as bare
// file names rather than full paths.
func NiceLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     &level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}))
}
