package palette

import (
	"unicode"
	"unicode/utf8"
)

// Entry is one `[NAME] = {R, G, B}` initializer.
type Entry struct {
	// Index is the case selector emitted for this entry.
	Index int
	// Line is the 0-based line of the source file the entry was read from.
	Line  int
	Name  string
	Color RGB
}

// Label is the entry name with its first character upper-cased. The rest of
// the name is left untouched, so `deep_blue` becomes `Deep_blue`.
func (e Entry) Label() string {
	return Capitalize(e.Name)
}

// Capitalize upper-cases the first rune of s and keeps the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
