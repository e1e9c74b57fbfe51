package scanner

import (
	"regexp"
	"strconv"

	"github.com/hnimtadd/vgapalette/palette"
)

// entryPattern matches a designated initializer such as
//
//	[LIGHT_GREEN] = {20, 211, 69},
//
// anywhere in a line, so trailing commas and comments are ignored.
// Channels are ASCII digits only. Names take letters, digits and underscore,
// which covers C identifiers but not the combining marks a fully Unicode \w
// would accept.
var entryPattern = regexp.MustCompile(
	`\[([\p{L}\p{N}_]+)\]\s*=\s*\{\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\}`,
)

// match extracts the name and color of an initializer on line. ok is false
// when the line holds no initializer; err is set when it does but a channel
// does not fit in a uint64.
func match(line string) (name string, color palette.RGB, ok bool, err error) {
	parts := entryPattern.FindStringSubmatch(line)
	if parts == nil {
		return "", palette.RGB{}, false, nil
	}

	var channels [3]uint64
	for i, s := range parts[2:5] {
		channels[i], err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return parts[1], palette.RGB{}, true, err
		}
	}
	return parts[1], palette.RGB{R: channels[0], G: channels[1], B: channels[2]}, true, nil
}
