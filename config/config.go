// Package config resolves the generator settings from the environment, an
// optional .env file and command line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/hnimtadd/vgapalette/logger"
	"github.com/hnimtadd/vgapalette/scanner"
	"github.com/hnimtadd/vgapalette/verilog"
)

const (
	EnvInput     = "VGAPALETTE_INPUT"
	EnvMarker    = "VGAPALETTE_MARKER"
	EnvIndex     = "VGAPALETTE_INDEX"
	EnvSignal    = "VGAPALETTE_SIGNAL"
	EnvLogLevel  = "VGAPALETTE_LOG_LEVEL"
	EnvLogFormat = "VGAPALETTE_LOG_FORMAT"

	DefaultInput = "colors.c"
)

type Config struct {
	Input  string
	Marker string
	Mode   scanner.IndexMode
	Signal string
	// Output is a file path; empty means stdout.
	Output    string
	LogLevel  logger.Level
	LogFormat logger.Type
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// Parse builds a Config from args, using lookup for environment defaults.
func Parse(name string, args []string, lookup func(string) (string, bool), stderr io.Writer) (Config, error) {
	env := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(stderr)
	input := fset.String("input", env(EnvInput, DefaultInput), "C source holding the palette table")
	marker := fset.String("marker", env(EnvMarker, scanner.DefaultMarker), "substring marking the palette declaration")
	index := fset.String("index", env(EnvIndex, scanner.IndexOffset.String()), "color index mode: offset or sequential")
	signal := fset.String("signal", env(EnvSignal, verilog.DefaultSignal), "case selector signal")
	output := fset.String("o", "", "write Verilog to this file instead of stdout")
	logLevel := fset.String("log-level", env(EnvLogLevel, "info"), "log level: debug, info, warn or error")
	logFormat := fset.String("log-format", env(EnvLogFormat, "text"), "log format: text or json")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	if fset.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}

	mode, err := scanner.ParseIndexMode(*index)
	if err != nil {
		return Config{}, err
	}
	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		return Config{}, err
	}
	format, err := logger.ParseType(*logFormat)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Input:     *input,
		Marker:    *marker,
		Mode:      mode,
		Signal:    *signal,
		Output:    *output,
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

// FromEnvironment parses args against the process environment.
func FromEnvironment(name string, args []string) (Config, error) {
	return Parse(name, args, os.LookupEnv, os.Stderr)
}
