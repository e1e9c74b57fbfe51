// Package verilog renders a palette as the body of a combinational case
// statement driving the VGA color outputs.
package verilog

import (
	"fmt"
	"io"
	"iter"

	"github.com/hnimtadd/vgapalette/palette"
)

const DefaultSignal = "pixel_data"

const (
	target        = "{VGA_R, VGA_G, VGA_B}"
	defaultBranch = "  default: " + target + " = 24'hffffff; // Default to white"
	footer        = "endcase"
)

type Options struct {
	// Signal is the case selector. Defaults to DefaultSignal.
	Signal string
}

// Emitter writes one case block line by line. The first write error is kept
// and every later call becomes a no-op.
type Emitter struct {
	w      io.Writer
	signal string
	err    error
}

func NewEmitter(w io.Writer, opts Options) *Emitter {
	if opts.Signal == "" {
		opts.Signal = DefaultSignal
	}
	return &Emitter{w: w, signal: opts.Signal}
}

func (e *Emitter) Header() {
	e.printf("case (%s)\n", e.signal)
}

func (e *Emitter) Entry(entry palette.Entry) {
	e.printf("  6'd%d: %s = 24'h%s; // %s\n",
		entry.Index, target, entry.Color.Hex(), entry.Label())
}

func (e *Emitter) Default() {
	e.printf("%s\n", defaultBranch)
}

func (e *Emitter) Footer() {
	e.printf("%s\n", footer)
}

func (e *Emitter) Err() error {
	return e.err
}

// Emit writes the complete block: header, one line per entry, the default
// branch and the footer.
func (e *Emitter) Emit(entries iter.Seq[palette.Entry]) error {
	e.Header()
	for entry := range entries {
		e.Entry(entry)
		if e.err != nil {
			break
		}
	}
	e.Default()
	e.Footer()
	return e.err
}

func (e *Emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		e.err = fmt.Errorf("write verilog: %w", err)
	}
}
