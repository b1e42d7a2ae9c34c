// Package ocolor provides a color value that keeps RGB, HSV and CMYK in
// sync, a registry of named hues, and rotation on the artistic
// (red-yellow-blue) color wheel for complementary and analogous colors.
//
// # Quick Start
//
//	import "github.com/oliver-nowak/ocolor"
//
//	c, err := ocolor.ParseHex("#ff0000")
//	if err != nil {
//		// handle error
//	}
//	h, s, v := c.HSV()              // 0, 1, 1
//	name := c.ClosestHue(false)     // red
//	comp := c.Complement()          // green on the artistic wheel
//	darker := comp.Darken(0.2)
//
// # Representations
//
// A Color is built from one representation (RGB, BGR, HSV, CMYK, a packed
// 32-bit integer, a hex string or a CSS color name) and derives the others
// immediately, so every accessor is a field read. All channels are in
// [0,1]; the hue is circular and wraps instead of clamping. Out-of-range
// channel values are clamped, never rejected.
//
// Packed values come in two layouts. [NewARGB] and [NewPackedBGRA] read
// alpha from the high byte and invert [Color.ToARGB]. [Color.ToBGRA]
// writes alpha in the low byte; read those values back with [UnpackBGRA],
// not NewPackedBGRA.
//
// Colors are immutable values. Methods such as WithRed, Darken or
// RotateRYB return a new Color, so chains read as ordinary function
// composition and values can be shared across goroutines freely.
//
// # Hues
//
// Twelve named hues are registered in a fixed order: red, orange, yellow,
// lime, green, teal, cyan, azure, blue, indigo, purple and pink. NearestHue
// searches them with circular distance; HueByName looks them up by exact
// name.
//
// # The RYB wheel
//
// Painters place red opposite green and yellow opposite purple, which
// plain HSV arithmetic does not. RotateRYB maps the HSV hue onto the
// artistic wheel through a table of 25 control points, turns it there and
// maps it back.
//
// # Errors
//
// Unknown names return errors wrapping ErrNotFound; malformed hex strings
// return a *ParseError wrapping ErrInvalidHex.
package ocolor

// Version is the current version of the library.
const Version = "0.2.0"
