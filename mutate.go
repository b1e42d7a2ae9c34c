package ocolor

import (
	"github.com/oliver-nowak/ocolor/internal/srgb"
	"github.com/oliver-nowak/ocolor/mathutil"
)

// WithRGB returns c with new red, green and blue channels. Inputs are
// clamped to [0,1]; HSV and CMYK are derived from the result.
func (c Color) WithRGB(r, g, b float64) Color {
	c.rgb = [3]float64{
		mathutil.ClipNormalized(r),
		mathutil.ClipNormalized(g),
		mathutil.ClipNormalized(b),
	}
	c.hsv[0], c.hsv[1], c.hsv[2] = RGBToHSV(c.rgb[0], c.rgb[1], c.rgb[2])
	c.cmyk[0], c.cmyk[1], c.cmyk[2], c.cmyk[3] = RGBToCMYK(c.rgb[0], c.rgb[1], c.rgb[2])
	return c
}

// WithBGR is WithRGB with the channels in blue, green, red order.
func (c Color) WithBGR(b, g, r float64) Color {
	return c.WithRGB(r, g, b)
}

// WithHSV returns c with a new hue, saturation and value. The hue wraps
// into [0,1); saturation and value are clamped. RGB and CMYK are derived
// from the result, and the hue is kept even for greys.
func (c Color) WithHSV(h, s, v float64) Color {
	c.hsv = [3]float64{
		mathutil.Wrap01(h),
		mathutil.ClipNormalized(s),
		mathutil.ClipNormalized(v),
	}
	c.rgb[0], c.rgb[1], c.rgb[2] = HSVToRGB(c.hsv[0], c.hsv[1], c.hsv[2])
	c.cmyk[0], c.cmyk[1], c.cmyk[2], c.cmyk[3] = RGBToCMYK(c.rgb[0], c.rgb[1], c.rgb[2])
	return c
}

// WithCMYK returns c with new cyan, magenta, yellow and key inks, each
// clamped to [0,1]. RGB and HSV are derived from the result. The inks are
// kept as written, so (0.5, 0.5, 0.5, 0) and (0, 0, 0, 0.5) stay distinct
// even though both print the same grey.
func (c Color) WithCMYK(cy, m, y, k float64) Color {
	c.cmyk = [4]float64{
		mathutil.ClipNormalized(cy),
		mathutil.ClipNormalized(m),
		mathutil.ClipNormalized(y),
		mathutil.ClipNormalized(k),
	}
	c.rgb[0], c.rgb[1], c.rgb[2] = CMYKToRGB(c.cmyk[0], c.cmyk[1], c.cmyk[2], c.cmyk[3])
	c.hsv[0], c.hsv[1], c.hsv[2] = RGBToHSV(c.rgb[0], c.rgb[1], c.rgb[2])
	return c
}

// WithARGB returns c set from a packed 0xAARRGGBB value, alpha included.
func (c Color) WithARGB(argb uint32) Color {
	c = c.WithRGB(
		srgb.Expand(uint8(argb>>16)),
		srgb.Expand(uint8(argb>>8)),
		srgb.Expand(uint8(argb)),
	)
	c.alpha = srgb.Expand(uint8(argb >> 24))
	return c
}

// WithAlpha returns c with alpha clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	c.alpha = mathutil.ClipNormalized(a)
	return c
}

// WithRed returns c with a new red channel.
func (c Color) WithRed(r float64) Color {
	_, g, b := c.RGB()
	return c.WithRGB(r, g, b)
}

// WithGreen returns c with a new green channel.
func (c Color) WithGreen(g float64) Color {
	r, _, b := c.RGB()
	return c.WithRGB(r, g, b)
}

// WithBlue returns c with a new blue channel.
func (c Color) WithBlue(b float64) Color {
	r, g, _ := c.RGB()
	return c.WithRGB(r, g, b)
}

// WithHue returns c with a new hue; the value wraps into [0,1).
func (c Color) WithHue(h float64) Color {
	_, s, v := c.HSV()
	return c.WithHSV(h, s, v)
}

// WithSaturation returns c with a new saturation.
func (c Color) WithSaturation(s float64) Color {
	h, _, v := c.HSV()
	return c.WithHSV(h, s, v)
}

// WithBrightness returns c with a new HSV value.
func (c Color) WithBrightness(v float64) Color {
	h, s, _ := c.HSV()
	return c.WithHSV(h, s, v)
}

// WithCyan returns c with a new cyan ink.
func (c Color) WithCyan(cy float64) Color {
	_, m, y, k := c.CMYK()
	return c.WithCMYK(cy, m, y, k)
}

// WithMagenta returns c with a new magenta ink.
func (c Color) WithMagenta(m float64) Color {
	cy, _, y, k := c.CMYK()
	return c.WithCMYK(cy, m, y, k)
}

// WithYellow returns c with a new yellow ink.
func (c Color) WithYellow(y float64) Color {
	cy, m, _, k := c.CMYK()
	return c.WithCMYK(cy, m, y, k)
}

// WithKey returns c with a new black (key) ink.
func (c Color) WithKey(k float64) Color {
	cy, m, y, _ := c.CMYK()
	return c.WithCMYK(cy, m, y, k)
}

// AdjustRGB adds the deltas to the RGB channels.
func (c Color) AdjustRGB(dr, dg, db float64) Color {
	r, g, b := c.RGB()
	return c.WithRGB(r+dr, g+dg, b+db)
}

// AdjustBGR adds the deltas to the channels in blue, green, red order.
func (c Color) AdjustBGR(db, dg, dr float64) Color {
	return c.AdjustRGB(dr, dg, db)
}

// AdjustHSV adds the deltas to hue, saturation and value.
func (c Color) AdjustHSV(dh, ds, dv float64) Color {
	h, s, v := c.HSV()
	return c.WithHSV(h+dh, s+ds, v+dv)
}

// Darken lowers the HSV value by step.
func (c Color) Darken(step float64) Color {
	return c.WithBrightness(c.hsv[2] - step)
}

// Lighten raises the HSV value by step.
func (c Color) Lighten(step float64) Color {
	return c.WithBrightness(c.hsv[2] + step)
}

// Saturate raises the saturation by step.
func (c Color) Saturate(step float64) Color {
	return c.WithSaturation(c.hsv[1] + step)
}

// Desaturate lowers the saturation by step.
func (c Color) Desaturate(step float64) Color {
	return c.WithSaturation(c.hsv[1] - step)
}

// AdjustContrast pushes c away from mid brightness: dark colors get
// darker and light colors lighter.
func (c Color) AdjustContrast(amount float64) Color {
	if c.hsv[2] < 0.5 {
		return c.Darken(amount)
	}
	return c.Lighten(amount)
}

// InvertRGB returns the RGB negative of c. Alpha is kept.
func (c Color) InvertRGB() Color {
	r, g, b := c.RGB()
	return c.WithRGB(1-r, 1-g, 1-b)
}

// Blend interpolates linearly from c to other in RGB and alpha.
// t=0 returns c, t=1 returns other.
func (c Color) Blend(other Color, t float64) Color {
	out := c.WithRGB(
		c.rgb[0]+(other.rgb[0]-c.rgb[0])*t,
		c.rgb[1]+(other.rgb[1]-c.rgb[1])*t,
		c.rgb[2]+(other.rgb[2]-c.rgb[2])*t,
	)
	return out.WithAlpha(c.alpha + (other.alpha-c.alpha)*t)
}
