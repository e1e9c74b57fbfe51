package palette

import "fmt"

// RGB is a color as captured from the source table. Channels are expected to
// be in 0-255 but are not clamped.
type RGB struct {
	R, G, B uint64
}

// Hex returns the channels as lowercase, zero-padded hex pairs in R, G, B
// order. A channel above 0xff widens its own segment.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// InByteRange reports whether every channel fits in a single byte.
func (c RGB) InByteRange() bool {
	return c.R <= 0xff && c.G <= 0xff && c.B <= 0xff
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB{%d, %d, %d}", c.R, c.G, c.B)
}
