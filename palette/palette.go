package palette

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Palette is the ordered list of entries read from one source table.
type Palette []Entry

// Lookup returns the entry emitted with the given color index.
func (p Palette) Lookup(index int) (Entry, bool) {
	for _, e := range p {
		if e.Index == index {
			return e, true
		}
	}
	return Entry{}, false
}

// IndexOf returns the color index of the first entry with color c, or -1.
func (p Palette) IndexOf(c RGB) int {
	for _, e := range p {
		if e.Color == c {
			return e.Index
		}
	}
	return -1
}

// Duplicate groups entries that share one color.
type Duplicate struct {
	Color   RGB
	Entries []Entry
}

func (d Duplicate) Names() []string {
	names := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		names[i] = e.Name
	}
	return names
}

// Duplicates returns every color used by more than one entry, in order of
// first appearance.
func (p Palette) Duplicates() ([]Duplicate, error) {
	groups := make(map[uint64]int)
	var all []Duplicate
	for _, e := range p {
		key, err := hashstructure.Hash(e.Color, hashstructure.FormatV2, nil)
		if err != nil {
			return nil, fmt.Errorf("hash color of %q: %w", e.Name, err)
		}
		i, ok := groups[key]
		if !ok {
			groups[key] = len(all)
			all = append(all, Duplicate{Color: e.Color, Entries: []Entry{e}})
			continue
		}
		all[i].Entries = append(all[i].Entries, e)
	}

	var dups []Duplicate
	for _, d := range all {
		if len(d.Entries) > 1 {
			dups = append(dups, d)
		}
	}
	return dups, nil
}
