package ocolor

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/oliver-nowak/ocolor/mathutil"
)

// channelTolerance is how far apart RGB channels may be for IsBlack and
// IsWhite to still call them equal.
const channelTolerance = 1e-6

// IsBlack reports whether c is a neutral at or below BlackPoint.
func (c Color) IsBlack() bool {
	return c.rgb[0] <= BlackPoint && c.isNeutral()
}

// IsWhite reports whether c is a neutral at or above WhitePoint.
func (c Color) IsWhite() bool {
	return c.rgb[0] >= WhitePoint && c.isNeutral()
}

func (c Color) isNeutral() bool {
	return math.Abs(c.rgb[0]-c.rgb[1]) <= channelTolerance &&
		math.Abs(c.rgb[1]-c.rgb[2]) <= channelTolerance
}

// IsGrey reports whether the saturation of c is below GreyThreshold.
func (c Color) IsGrey() bool {
	return c.hsv[1] < GreyThreshold
}

// IsPrimary reports whether the hue of c is within PrimaryVariance of a
// primary hue.
func (c Color) IsPrimary() bool {
	return IsPrimaryHue(c.hsv[0], PrimaryVariance)
}

// ClosestHue returns the named hue nearest to the hue of c.
func (c Color) ClosestHue(primaryOnly bool) Hue {
	return NearestHue(c.hsv[0], primaryOnly)
}

// Luminance returns the Rec. 601 luma 0.299r + 0.587g + 0.114b.
func (c Color) Luminance() float64 {
	return c.rgb[0]*0.299 + c.rgb[1]*0.587 + c.rgb[2]*0.114
}

// DistanceRGB returns the Euclidean distance between c and o in RGB.
func (c Color) DistanceRGB(o Color) float64 {
	dr := c.rgb[0] - o.rgb[0]
	dg := c.rgb[1] - o.rgb[1]
	db := c.rgb[2] - o.rgb[2]
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DistanceHSV returns the Euclidean distance between c and o in the HSV
// cone: hue is an angle, saturation the radius and value the height, so
// hues near 0 and 1 are close.
func (c Color) DistanceHSV(o Color) float64 {
	x1, y1, z1 := c.hsvPoint()
	x2, y2, z2 := o.hsvPoint()
	dx, dy, dz := x1-x2, y1-y2, z1-z2
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (c Color) hsvPoint() (x, y, z float64) {
	angle := c.hsv[0] * mathutil.TwoPi
	return math.Cos(angle) * c.hsv[1], math.Sin(angle) * c.hsv[1], c.hsv[2]
}

// DistanceCMYK returns the Euclidean distance between c and o in CMYK.
func (c Color) DistanceCMYK(o Color) float64 {
	var sum float64
	for i := range c.cmyk {
		d := c.cmyk[i] - o.cmyk[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// DistanceLab returns the CIE76 distance between c and o in L*a*b*,
// treating the RGB channels as sRGB. The result is on go-colorful's scale,
// where L runs from 0 to 1.
func (c Color) DistanceLab(o Color) float64 {
	return c.colorful().DistanceLab(o.colorful())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.rgb[0], G: c.rgb[1], B: c.rgb[2]}
}
