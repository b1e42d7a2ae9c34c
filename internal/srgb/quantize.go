package srgb

// Inv8Bit scales an 8-bit channel into [0,1].
const Inv8Bit = 1.0 / 255.0

// Expand maps an 8-bit channel to [0,1].
func Expand(u uint8) float64 {
	return float64(u) * Inv8Bit
}

// truncSlack absorbs the error of n*Inv8Bit*255 landing just below n.
const truncSlack = 1e-9

// Truncate maps a [0,1] channel to 8 bits by truncating v*255.
// Values outside [0,1] are clamped first.
func Truncate(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + truncSlack)
}

// Round maps a [0,1] channel to 8 bits with rounding.
// Values outside [0,1] are clamped first.
func Round(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Round16 maps a [0,1] channel to 16 bits with rounding.
func Round16(v float64) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}
