package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Type selects the slog handler backing a Logger.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

// ParseType maps "text" or "json" to a Type. The empty string yields TypeText.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	default:
		return TypeText, fmt.Errorf("unknown log format %q", name)
	}
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

// Stdout is reserved for generated output, so the default logger writes to
// stderr.
var DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

// Discard drops every record.
var Discard = New(Options{io.Discard, ErrorLevel, TypeText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stderr
	}
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}
