package ocolor

import (
	"github.com/oliver-nowak/ocolor/internal/srgb"
)

// NewARGB creates a color from a packed 32-bit value laid out as
// alpha [31:24], red [23:16], green [15:8], blue [7:0].
func NewARGB(argb uint32) Color {
	return NewRGBA(
		srgb.Expand(uint8(argb>>16)),
		srgb.Expand(uint8(argb>>8)),
		srgb.Expand(uint8(argb)),
		srgb.Expand(uint8(argb>>24)),
	)
}

// NewPackedBGRA creates a color from a packed 32-bit value, reading blue
// from bits [7:0], green from [15:8], red from [23:16] and alpha from
// [31:24]. The byte positions match NewARGB; only the grouping differs.
//
// NewPackedBGRA does not invert [Color.ToBGRA], which puts alpha in the
// low byte. Use [UnpackBGRA] to read values produced by ToBGRA.
func NewPackedBGRA(bgra uint32) Color {
	return NewBGRA(
		srgb.Expand(uint8(bgra)),
		srgb.Expand(uint8(bgra>>8)),
		srgb.Expand(uint8(bgra>>16)),
		srgb.Expand(uint8(bgra>>24)),
	)
}

// UnpackBGRA creates a color from a value produced by [Color.ToBGRA]:
// blue [31:24], green [23:16], red [15:8], alpha [7:0].
func UnpackBGRA(v uint32) Color {
	return NewBGRA(
		srgb.Expand(uint8(v>>24)),
		srgb.Expand(uint8(v>>16)),
		srgb.Expand(uint8(v>>8)),
		srgb.Expand(uint8(v)),
	)
}

// ToARGB packs c as alpha [31:24], red [23:16], green [15:8], blue [7:0].
// Each channel is scaled by 255 and truncated.
func (c Color) ToARGB() uint32 {
	return uint32(srgb.Truncate(c.alpha))<<24 |
		uint32(srgb.Truncate(c.rgb[0]))<<16 |
		uint32(srgb.Truncate(c.rgb[1]))<<8 |
		uint32(srgb.Truncate(c.rgb[2]))
}

// ToBGRA packs c as blue [31:24], green [23:16], red [15:8], alpha [7:0].
// Each channel is scaled by 255 and truncated.
func (c Color) ToBGRA() uint32 {
	return uint32(srgb.Truncate(c.rgb[2]))<<24 |
		uint32(srgb.Truncate(c.rgb[1]))<<16 |
		uint32(srgb.Truncate(c.rgb[0]))<<8 |
		uint32(srgb.Truncate(c.alpha))
}
