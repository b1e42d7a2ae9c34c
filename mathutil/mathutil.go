// Package mathutil provides the scalar helpers shared by the color code:
// clamping, min/max, angle conversion and power-of-two rounding.
//
// All functions are pure. Float helpers let NaN propagate instead of
// special-casing it.
package mathutil

import (
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Number is the set of types the generic helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Angle and tolerance constants.
const (
	Pi        = math.Pi
	HalfPi    = math.Pi / 2
	ThirdPi   = math.Pi / 3
	QuarterPi = math.Pi / 4
	TwoPi     = math.Pi * 2
	DegToRad  = math.Pi / 180
	RadToDeg  = 180 / math.Pi
	Log2      = math.Ln2

	// Eps is the tolerance used for float comparisons.
	Eps = 1.1920928955078125e-07
)

// Clip restricts v to the closed range [min, max].
func Clip[T Number](v, min, max T) T {
	return lo.Clamp(v, min, max)
}

// ClipNormalized restricts v to [0, 1].
func ClipNormalized(v float64) float64 {
	return lo.Clamp(v, 0, 1)
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	return min(a, b)
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	return max(a, b)
}

// Min3 returns the smallest of a, b and c.
func Min3[T Number](a, b, c T) T {
	return min(a, b, c)
}

// Max3 returns the largest of a, b and c.
func Max3[T Number](a, b, c T) T {
	return max(a, b, c)
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * DegToRad
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * RadToDeg
}

// Floor rounds x toward negative infinity.
// Floor(-2) is -2 and Floor(-2.5) is -3.
func Floor(x float64) int {
	return int(math.Floor(x))
}

// CeilPowerOf2 returns the smallest power of two that is >= x.
// Inputs <= 1 yield 1.
func CeilPowerOf2(x float64) int {
	if x <= 1 {
		return 1
	}
	return int(math.Exp2(math.Ceil(math.Log2(x))))
}

// FloorPowerOf2 returns the largest power of two that is <= x.
// Inputs <= 1 yield 1.
func FloorPowerOf2(x float64) int {
	if x <= 1 {
		return 1
	}
	return int(math.Exp2(math.Floor(math.Log2(x))))
}

// Wrap01 reduces a circular value into [0, 1).
func Wrap01(x float64) float64 {
	x -= math.Floor(x)
	// x - Floor(x) rounds up to 1 for tiny negative inputs.
	if x >= 1 {
		return 0
	}
	return x
}

// WrapDegrees reduces an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		return 0
	}
	return deg
}
