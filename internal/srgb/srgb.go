// Package srgb provides the sRGB transfer functions, the D65 XYZ matrix and
// 8-bit channel quantization used by ocolor.
package srgb

import "math"

// D65 reference white, 2° observer.
const (
	WhiteX = 0.95047
	WhiteY = 1.0
	WhiteZ = 1.08883
)

// Decode converts an sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func Decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Encode converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// The input is not clamped, so out-of-gamut values stay out of gamut.
func Encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// DecodeRGB converts an sRGB triple to linear light.
func DecodeRGB(r, g, b float64) (float64, float64, float64) {
	return Decode(r), Decode(g), Decode(b)
}

// EncodeRGB converts a linear triple to sRGB.
func EncodeRGB(r, g, b float64) (float64, float64, float64) {
	return Encode(r), Encode(g), Encode(b)
}

// XYZToLinear converts CIE XYZ (D65) to linear sRGB.
func XYZToLinear(x, y, z float64) (r, g, b float64) {
	r = x*3.2406 + y*-1.5372 + z*-0.4986
	g = x*-0.9689 + y*1.8758 + z*0.0415
	b = x*0.0557 + y*-0.2040 + z*1.0570
	return r, g, b
}
