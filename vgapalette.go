// Package vgapalette turns the RGB palette table of a C source file into a
// Verilog case statement that maps palette indices to 24-bit colors.
package vgapalette

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/hnimtadd/vgapalette/logger"
	"github.com/hnimtadd/vgapalette/palette"
	"github.com/hnimtadd/vgapalette/scanner"
	"github.com/hnimtadd/vgapalette/verilog"
)

// InputAccessError reports that the palette source could not be opened or
// read.
type InputAccessError struct {
	Path string
	Err  error
}

func (e *InputAccessError) Error() string {
	return fmt.Sprintf("access palette source %s: %v", e.Path, e.Err)
}

func (e *InputAccessError) Unwrap() error {
	return e.Err
}

type Options struct {
	// Input is the path of the C source holding the palette table.
	Input  string
	Marker string
	Mode   scanner.IndexMode
	Signal string
	// Output receives the generated Verilog. Defaults to os.Stdout.
	Output io.Writer
	Logger logger.Logger
}

// Generator reads one palette source and writes its case statement.
type Generator struct {
	input   string
	output  io.Writer
	scanner *scanner.Scanner
	signal  string
	logger  logger.Logger
}

func New(opts Options) *Generator {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	return &Generator{
		input:  opts.Input,
		output: opts.Output,
		scanner: scanner.New(scanner.Options{
			Marker: opts.Marker,
			Mode:   opts.Mode,
			Logger: opts.Logger,
		}),
		signal: opts.Signal,
		logger: opts.Logger,
	}
}

// Run is a shorthand for New(opts).Run().
func Run(opts Options) error {
	return New(opts).Run()
}

// Run reads the input file and writes the case statement. An input without
// the marker or without entries still yields the header, default branch and
// footer.
func (g *Generator) Run() error {
	lines, err := g.readLines()
	if err != nil {
		return err
	}

	pal := g.scanner.Collect(lines)
	g.logger.Info("palette scanned", "input", g.input, "lines", len(lines), "entries", len(pal))
	g.reportDuplicates(pal)

	return verilog.NewEmitter(g.output, verilog.Options{Signal: g.signal}).
		Emit(slices.Values(pal))
}

func (g *Generator) readLines() ([]string, error) {
	f, err := os.Open(g.input)
	if err != nil {
		return nil, &InputAccessError{Path: g.input, Err: err}
	}
	defer f.Close()

	lines, err := scanner.ReadLines(f)
	if err != nil {
		return nil, &InputAccessError{Path: g.input, Err: err}
	}
	return lines, nil
}

// reportDuplicates logs colors shared by several entries. The output is not
// affected.
func (g *Generator) reportDuplicates(pal palette.Palette) {
	dups, err := pal.Duplicates()
	if err != nil {
		g.logger.Warn("duplicate check failed", "err", err)
		return
	}
	for _, d := range dups {
		// A reverse lookup by color resolves to the first entry.
		index := pal.IndexOf(d.Color)
		first, _ := pal.Lookup(index)
		g.logger.Warn("color shared by several entries",
			"color", d.Color.Hex(), "names", d.Names(), "index", index, "first", first.Name)
	}
}
