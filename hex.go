package ocolor

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/oliver-nowak/ocolor/internal/srgb"
)

// maxHexDigits is the length of an RRGGBB value.
const maxHexDigits = 6

// parseHex reads an optional "#" or "0x" prefix followed by one to six hex
// digits and returns the numeric value.
func parseHex(s string) (uint32, error) {
	digits := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(digits, "#"):
		digits = digits[1:]
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
	}

	if digits == "" {
		return 0, &ParseError{Input: s, Reason: "no hex digits", Err: ErrInvalidHex}
	}
	if len(digits) > maxHexDigits {
		return 0, &ParseError{Input: s, Reason: "more than 6 hex digits", Err: ErrInvalidHex}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "non-hex character", Err: ErrInvalidHex}
	}
	return uint32(v), nil
}

// HexToRGB parses a hex string as 0xRRGGBB. The string may start with "#"
// or "0x" and holds one to six hex digits; shorter strings are read as a
// number, so "ff" is blue. Malformed input returns a *ParseError.
func HexToRGB(s string) (r, g, b float64, err error) {
	v, err := parseHex(s)
	if err != nil {
		debug("HexToRGB", "hex parse failed", "input", s, "err", err)
		return 0, 0, 0, err
	}
	return srgb.Expand(uint8(v >> 16)), srgb.Expand(uint8(v >> 8)), srgb.Expand(uint8(v)), nil
}

// HexToBGR is HexToRGB with the result in blue, green, red order.
func HexToBGR(s string) (b, g, r float64, err error) {
	r, g, b, err = HexToRGB(s)
	return b, g, r, err
}

// ParseHex creates an opaque color from a hex string, see HexToRGB.
func ParseHex(s string) (Color, error) {
	r, g, b, err := HexToRGB(s)
	if err != nil {
		return Color{}, err
	}
	return NewRGB(r, g, b), nil
}

// NewHex is an alias for ParseHex.
var NewHex = ParseHex

// RGBToHex formats channels as six lowercase hex digits, rrggbb.
// Channels are clamped to [0,1], scaled by 255 and truncated.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("%02x%02x%02x", srgb.Truncate(r), srgb.Truncate(g), srgb.Truncate(b))
}

// BGRToHex formats channels given in blue, green, red order as rrggbb.
func BGRToHex(b, g, r float64) string {
	return RGBToHex(r, g, b)
}

// Hex returns the RGB channels of c as rrggbb.
func (c Color) Hex() string {
	return RGBToHex(c.rgb[0], c.rgb[1], c.rgb[2])
}

// NewNamed creates a color from an SVG 1.1 / CSS color keyword such as
// "cornflowerblue". Case and surrounding space are ignored. Unknown names
// return an error wrapping ErrNotFound.
func NewNamed(name string) (Color, error) {
	// A Caser is stateful, so each call gets its own.
	key := cases.Fold().String(strings.TrimSpace(name))
	nc, ok := colornames.Map[key]
	if !ok {
		debug("NewNamed", "color name not registered", "name", name)
		return Color{}, fmt.Errorf("%w: color %q", ErrNotFound, name)
	}
	return FromColor(nc), nil
}
