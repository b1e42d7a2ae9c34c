package ocolor

import (
	"fmt"
	"image/color"

	"github.com/oliver-nowak/ocolor/internal/srgb"
	"github.com/oliver-nowak/ocolor/mathutil"
)

// Color is one color held in RGB, HSV and CMYK at once, plus alpha.
// Every constructor and With method derives all representations from the
// one it was given, so reads never convert. BGR, ARGB and BGRA are views
// of the RGB channels.
//
// Color is an immutable value: methods return a new Color and leave the
// receiver untouched, so values can be shared between goroutines.
//
// The zero value holds no color; start from a constructor or one of the
// predefined colors.
type Color struct {
	rgb   [3]float64
	hsv   [3]float64
	cmyk  [4]float64
	alpha float64
}

// Thresholds used by the classification queries.
const (
	// BlackPoint is the highest channel value IsBlack accepts.
	BlackPoint = 0.08
	// WhitePoint is the lowest channel value IsWhite accepts.
	WhitePoint = 1.0
	// GreyThreshold is the saturation below which IsGrey holds.
	GreyThreshold = 0.01
)

// Common colors
var (
	Red     = NewRGB(1, 0, 0)
	Green   = NewRGB(0, 1, 0)
	Blue    = NewRGB(0, 0, 1)
	Cyan    = NewRGB(0, 1, 1)
	Magenta = NewRGB(1, 0, 1)
	Yellow  = NewRGB(1, 1, 0)
	Black   = NewRGB(0, 0, 0)
	White   = NewRGB(1, 1, 1)
)

// NewRGB creates an opaque color from red, green and blue in [0,1].
func NewRGB(r, g, b float64) Color {
	return NewRGBA(r, g, b, 1)
}

// NewRGBA creates a color from red, green, blue and alpha in [0,1].
func NewRGBA(r, g, b, a float64) Color {
	return Color{alpha: mathutil.ClipNormalized(a)}.WithRGB(r, g, b)
}

// NewBGR creates an opaque color from blue, green and red in [0,1].
func NewBGR(b, g, r float64) Color {
	return NewRGBA(r, g, b, 1)
}

// NewBGRA creates a color from blue, green, red and alpha in [0,1].
func NewBGRA(b, g, r, a float64) Color {
	return NewRGBA(r, g, b, a)
}

// NewHSV creates an opaque color from hue, saturation and value.
// The hue wraps into [0,1); saturation and value are clamped to [0,1].
func NewHSV(h, s, v float64) Color {
	return NewHSVA(h, s, v, 1)
}

// NewHSVA is NewHSV with an alpha channel.
func NewHSVA(h, s, v, a float64) Color {
	return Color{alpha: mathutil.ClipNormalized(a)}.WithHSV(h, s, v)
}

// NewHSVFromHue creates an opaque color at a named hue.
func NewHSVFromHue(hue Hue, s, v float64) Color {
	return NewHSVA(hue.position, s, v, 1)
}

// NewCMYK creates an opaque color from cyan, magenta, yellow and key in [0,1].
func NewCMYK(c, m, y, k float64) Color {
	return NewCMYKA(c, m, y, k, 1)
}

// NewCMYKA is NewCMYK with an alpha channel.
func NewCMYKA(c, m, y, k, a float64) Color {
	return Color{alpha: mathutil.ClipNormalized(a)}.WithCMYK(c, m, y, k)
}

// NewGray creates an opaque grey of the given level.
func NewGray(level float64) Color {
	return NewGrayAlpha(level, 1)
}

// NewGrayAlpha creates a grey of the given level and alpha.
func NewGrayAlpha(level, a float64) Color {
	return NewRGBA(level, level, level, a)
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return NewRGBA(
		float64(nc.R)/0xffff,
		float64(nc.G)/0xffff,
		float64(nc.B)/0xffff,
		float64(nc.A)/0xffff,
	)
}

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b float64) { return c.rgb[0], c.rgb[1], c.rgb[2] }

// BGR returns the channels in blue, green, red order.
func (c Color) BGR() (b, g, r float64) { return c.rgb[2], c.rgb[1], c.rgb[0] }

// HSV returns hue in [0,1), saturation and value.
func (c Color) HSV() (h, s, v float64) { return c.hsv[0], c.hsv[1], c.hsv[2] }

// CMYK returns cyan, magenta, yellow and key.
func (c Color) CMYK() (cy, m, y, k float64) { return c.cmyk[0], c.cmyk[1], c.cmyk[2], c.cmyk[3] }

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 { return c.alpha }

// Red returns the red channel.
func (c Color) Red() float64 { return c.rgb[0] }

// Green returns the green channel.
func (c Color) Green() float64 { return c.rgb[1] }

// Blue returns the blue channel.
func (c Color) Blue() float64 { return c.rgb[2] }

// Hue returns the hue in [0,1).
func (c Color) Hue() float64 { return c.hsv[0] }

// Saturation returns the HSV saturation.
func (c Color) Saturation() float64 { return c.hsv[1] }

// Brightness returns the HSV value.
func (c Color) Brightness() float64 { return c.hsv[2] }

// Cyan returns the cyan ink.
func (c Color) Cyan() float64 { return c.cmyk[0] }

// Magenta returns the magenta ink.
func (c Color) Magenta() float64 { return c.cmyk[1] }

// Yellow returns the yellow ink.
func (c Color) Yellow() float64 { return c.cmyk[2] }

// Key returns the black (key) ink.
func (c Color) Key() float64 { return c.cmyk[3] }

// LinearRGB returns the channels with the sRGB transfer curve removed.
func (c Color) LinearRGB() (r, g, b float64) {
	return srgb.DecodeRGB(c.rgb[0], c.rgb[1], c.rgb[2])
}

// RGBA implements color.Color: alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return srgb.Round16(c.rgb[0] * c.alpha),
		srgb.Round16(c.rgb[1] * c.alpha),
		srgb.Round16(c.rgb[2] * c.alpha),
		srgb.Round16(c.alpha)
}

// NRGBA converts c to an 8-bit non-premultiplied color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: srgb.Round(c.rgb[0]),
		G: srgb.Round(c.rgb[1]),
		B: srgb.Round(c.rgb[2]),
		A: srgb.Round(c.alpha),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%s (a=%.3g)", c.Hex(), c.alpha)
}
