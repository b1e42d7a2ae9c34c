package ocolor

import (
	"math"

	"github.com/oliver-nowak/ocolor/internal/srgb"
	"github.com/oliver-nowak/ocolor/mathutil"
)

// achromatic is the saturation below which HSVToRGB treats a color as grey.
const achromatic = 1e-7

// HSVToRGB converts hue, saturation and value, each in [0,1], to RGB.
// The hue is split into six 60° sectors.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if math.Abs(s) < achromatic {
		return v, v, v
	}

	h = mathutil.Wrap01(h) * 6
	i := mathutil.Floor(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// HSVToBGR is HSVToRGB with the result in blue, green, red order.
func HSVToBGR(h, s, v float64) (b, g, r float64) {
	r, g, b = HSVToRGB(h, s, v)
	return b, g, r
}

// RGBToHSV converts RGB in [0,1] to hue, saturation and value.
// The hue of a grey is 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	v = mathutil.Max3(r, g, b)
	d := v - mathutil.Min3(r, g, b)
	if v != 0 {
		s = d / v
	}
	if s == 0 {
		return 0, 0, v
	}

	switch v {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h /= 6
	if h < 0 {
		h++
	}
	return mathutil.Wrap01(h), s, v
}

// BGRToHSV is RGBToHSV with the input in blue, green, red order.
func BGRToHSV(b, g, r float64) (h, s, v float64) {
	return RGBToHSV(r, g, b)
}

// RGBToCMYK converts RGB to CMYK with a simple overprint model:
// the shared part of c, m and y moves into the key channel.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	c, m, y = 1-r, 1-g, 1-b
	k = mathutil.Min3(c, m, y)
	c = mathutil.ClipNormalized(c - k)
	m = mathutil.ClipNormalized(m - k)
	y = mathutil.ClipNormalized(y - k)
	return c, m, y, mathutil.ClipNormalized(k)
}

// BGRToCMYK is RGBToCMYK with the input in blue, green, red order.
func BGRToCMYK(b, g, r float64) (c, m, y, k float64) {
	return RGBToCMYK(r, g, b)
}

// CMYKToRGB converts CMYK to RGB, the inverse of RGBToCMYK.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	r = 1 - math.Min(1, c+k)
	g = 1 - math.Min(1, m+k)
	b = 1 - math.Min(1, y+k)
	return r, g, b
}

// CMYKToBGR is CMYKToRGB with the result in blue, green, red order.
func CMYKToBGR(c, m, y, k float64) (b, g, r float64) {
	r, g, b = CMYKToRGB(c, m, y, k)
	return b, g, r
}

// LabToRGB converts CIE L*a*b* (L in [0,100]) to sRGB through XYZ with
// the D65 white point. The result is not clamped: colors outside the sRGB
// gamut come back with channels below 0 or above 1.
func LabToRGB(l, a, b float64) (float64, float64, float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x := labExpand(fx) * srgb.WhiteX
	y := labExpand(fy) * srgb.WhiteY
	z := labExpand(fz) * srgb.WhiteZ

	return srgb.EncodeRGB(srgb.XYZToLinear(x, y, z))
}

// LabToBGR is LabToRGB with the result in blue, green, red order.
func LabToBGR(l, a, b float64) (float64, float64, float64) {
	r, g, bl := LabToRGB(l, a, b)
	return bl, g, r
}

// labExpand inverts the CIE lightness compression: a cube above the
// breakpoint, a line below it.
func labExpand(t float64) float64 {
	if p := t * t * t; p > 0.008856 {
		return p
	}
	return (t - 16.0/116.0) / 7.787
}
