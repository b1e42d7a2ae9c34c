package ocolor

import (
	"github.com/oliver-nowak/ocolor/mathutil"
)

// rybPoint pairs a position on the artistic (red-yellow-blue) wheel with
// the HSV hue at that position, both in degrees.
type rybPoint struct {
	artistic   float64
	perceptual float64
}

// rybWheel is ordered by artistic degree in 15° steps. The last point
// closes the circle and is stored with perceptual 0; searches unwrap it
// to 360.
var rybWheel = [...]rybPoint{
	{0, 0}, {15, 8}, {30, 17}, {45, 26}, {60, 34}, {75, 41},
	{90, 48}, {105, 54}, {120, 60}, {135, 81}, {150, 103}, {165, 123},
	{180, 138}, {195, 155}, {210, 171}, {225, 187}, {240, 204}, {255, 219},
	{270, 234}, {285, 251}, {300, 267}, {315, 282}, {330, 298}, {345, 329},
	{360, 0},
}

// rybSegment returns the endpoints of segment i with the wraparound
// applied to the perceptual end.
func rybSegment(i int) (p, q rybPoint) {
	p, q = rybWheel[i], rybWheel[i+1]
	if q.perceptual < p.perceptual {
		q.perceptual += 360
	}
	return p, q
}

// HueToRYB maps an HSV hue in degrees to its position on the artistic
// color wheel, in degrees. The input is reduced into [0,360) first.
func HueToRYB(deg float64) float64 {
	deg = mathutil.WrapDegrees(deg)
	for i := 0; i < len(rybWheel)-1; i++ {
		p, q := rybSegment(i)
		if p.perceptual <= deg && deg <= q.perceptual {
			return p.artistic + (q.artistic-p.artistic)*(deg-p.perceptual)/(q.perceptual-p.perceptual)
		}
	}
	// unreachable: the segments cover [0,360]
	return 0
}

// RYBToHue maps a position on the artistic color wheel, in degrees, to
// the HSV hue in [0,360). The input is reduced into [0,360) first.
func RYBToHue(deg float64) float64 {
	deg = mathutil.WrapDegrees(deg)
	for i := 0; i < len(rybWheel)-1; i++ {
		p, q := rybSegment(i)
		if p.artistic <= deg && deg <= q.artistic {
			h := p.perceptual + (q.perceptual-p.perceptual)*(deg-p.artistic)/(q.artistic-p.artistic)
			return mathutil.WrapDegrees(h)
		}
	}
	return 0
}

// RotateRYB returns c with its hue turned by theta degrees on the
// artistic color wheel. Saturation, brightness and alpha are kept.
func (c Color) RotateRYB(theta float64) Color {
	ryb := HueToRYB(c.hsv[0]*360) + mathutil.WrapDegrees(theta)
	return c.WithHue(RYBToHue(ryb) / 360)
}

// RotateRYBRadians is RotateRYB with theta in radians.
func (c Color) RotateRYBRadians(theta float64) Color {
	return c.RotateRYB(mathutil.Degrees(theta))
}

// Complement returns the color opposite c on the artistic color wheel.
func (c Color) Complement() Color {
	return c.RotateRYB(180)
}

// Analog returns a color near c: the hue is turned on the artistic wheel
// by up to ±angle degrees and saturation and brightness move by up to
// ±delta. The offsets are drawn from the source set with WithRand, or
// from the global math/rand/v2 source.
func (c Color) Analog(angle, delta float64, opts ...AnalogOption) Color {
	o := applyAnalogOptions(opts)
	out := c.RotateRYB(angle * o.normalizedRandom())
	_, s, v := out.HSV()
	s += delta * o.normalizedRandom()
	v += delta * o.normalizedRandom()
	return out.WithSaturation(s).WithBrightness(v)
}
