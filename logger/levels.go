package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// ParseLevel maps a level name (debug, info, warn, error) to a Level.
// The empty string yields DefaultLevel.
func ParseLevel(name string) (Level, error) {
	if name == "" {
		return DefaultLevel, nil
	}
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return DefaultLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
