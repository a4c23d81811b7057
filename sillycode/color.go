package sillycode

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidColor is returned by [ParseColor] when the string is not in the "#rrggbb" form.
var ErrInvalidColor = errors.New("invalid color")

// colorHexLen is the length of the "#rrggbb" form.
const colorHexLen = 7

// Color is an RGB color with 8-bit components.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// String formats the color as a lowercase hex string like "#ad77f1".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a color in the "#rrggbb" form. Hex digits are case-insensitive.
func ParseColor(s string) (Color, error) {
	if len(s) != colorHexLen || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var rgb [3]uint8
	for i := range rgb {
		start := 1 + i*2
		v, ok := parseHexByte(s[start], s[start+1])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		rgb[i] = v
	}

	return Color{rgb[0], rgb[1], rgb[2]}, nil
}

// parseHexByte parses exactly two hex digits. Signs and prefixes are not accepted.
func parseHexByte(hi, lo byte) (uint8, bool) {
	if !isHexDigit(hi) || !isHexDigit(lo) {
		return 0, false
	}
	v, err := strconv.ParseUint(string([]byte{hi, lo}), 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
