// Package scanner locates a C palette table in a list of source lines and
// extracts its `[NAME] = {R, G, B}` initializers.
package scanner

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hnimtadd/vgapalette/logger"
	"github.com/hnimtadd/vgapalette/palette"
)

const DefaultMarker = "palette[COLOR_COUNT]"

// IndexMode decides how color indices are assigned to matched entries.
type IndexMode uint8

const (
	// IndexOffset uses the line offset from the marker line. Lines between
	// entries that do not match still consume an index.
	IndexOffset IndexMode = iota
	// IndexSequential numbers matched entries 0, 1, 2, ... regardless of
	// the lines between them.
	IndexSequential
)

func (m IndexMode) String() string {
	switch m {
	case IndexOffset:
		return "offset"
	case IndexSequential:
		return "sequential"
	default:
		return fmt.Sprintf("IndexMode(%d)", m)
	}
}

func ParseIndexMode(s string) (IndexMode, error) {
	switch strings.ToLower(s) {
	case "", "offset":
		return IndexOffset, nil
	case "sequential":
		return IndexSequential, nil
	default:
		return IndexOffset, fmt.Errorf("unknown index mode %q (want offset or sequential)", s)
	}
}

type Options struct {
	// Marker is the substring identifying the palette declaration line.
	// Defaults to DefaultMarker.
	Marker string
	Mode   IndexMode
	Logger logger.Logger
}

type Scanner struct {
	marker string
	mode   IndexMode
	logger logger.Logger
}

func New(opts Options) *Scanner {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	return &Scanner{
		marker: opts.Marker,
		mode:   opts.Mode,
		logger: opts.Logger,
	}
}

// FindMarker returns the index of the first line containing the marker, or
// len(lines) when there is none.
func (s *Scanner) FindMarker(lines []string) int {
	for i, line := range lines {
		if strings.Contains(line, s.marker) {
			return i
		}
	}
	return len(lines)
}

// Scan yields the palette entries found from the marker line (inclusive) to
// the end of lines. Nothing is yielded when the marker is absent.
func (s *Scanner) Scan(lines []string) iter.Seq[palette.Entry] {
	return func(yield func(palette.Entry) bool) {
		start := s.FindMarker(lines)
		if start == len(lines) {
			s.logger.Warn("palette marker not found", "marker", s.marker, "lines", len(lines))
			return
		}
		s.logger.Debug("palette marker found", "marker", s.marker, "line", start)

		next := 0
		for i := start; i < len(lines); i++ {
			name, color, ok, err := match(lines[i])
			if !ok {
				continue
			}
			if err != nil {
				s.logger.Warn("skipping palette entry", "line", i, "name", name, "err", err)
				continue
			}

			index := i - start
			if s.mode == IndexSequential {
				index = next
				next++
			}
			if !color.InByteRange() {
				s.logger.Warn("color channel exceeds one byte", "line", i, "name", name, "color", color)
			}

			entry := palette.Entry{Index: index, Line: i, Name: name, Color: color}
			if !yield(entry) {
				return
			}
		}
	}
}

// Collect runs Scan to completion.
func (s *Scanner) Collect(lines []string) palette.Palette {
	var p palette.Palette
	for e := range s.Scan(lines) {
		p = append(p, e)
	}
	return p
}
