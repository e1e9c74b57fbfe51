// Command vgapalette prints the Verilog color case statement for the palette
// table of a C source file.
package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/hnimtadd/vgapalette"
	"github.com/hnimtadd/vgapalette/config"
	"github.com/hnimtadd/vgapalette/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if err := config.LoadEnv(".env"); err != nil {
		logger.DefaultLogger.Error("load environment", "err", err)
		return 1
	}

	cfg, err := config.FromEnvironment("vgapalette", args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.DefaultLogger.Error("invalid arguments", "err", err)
		return 2
	}

	log := logger.New(logger.Options{
		Buffer: os.Stderr,
		Level:  cfg.LogLevel,
		Type:   cfg.LogFormat,
	})

	var out bytes.Buffer
	err = vgapalette.Run(vgapalette.Options{
		Input:  cfg.Input,
		Marker: cfg.Marker,
		Mode:   cfg.Mode,
		Signal: cfg.Signal,
		Output: &out,
		Logger: log,
	})
	if err != nil {
		var accessErr *vgapalette.InputAccessError
		if errors.As(err, &accessErr) {
			log.Error("cannot read palette source", "path", accessErr.Path, "err", accessErr.Err)
		} else {
			log.Error("generate verilog", "err", err)
		}
		return 1
	}

	// The output file is only touched once generation has succeeded.
	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, out.Bytes(), 0o644); err != nil {
			log.Error("write output", "path", cfg.Output, "err", err)
			return 1
		}
		return 0
	}
	if _, err := out.WriteTo(stdout); err != nil {
		log.Error("write output", "err", err)
		return 1
	}
	return 0
}
