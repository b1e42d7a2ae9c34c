package ocolor

// ToRGBAArray writes red, green, blue and alpha as four consecutive
// float32 values at dst[offset:] and returns dst. A dst that is too short
// is grown first; existing values before offset are kept. This is the
// layout of an interleaved RGBA vertex attribute.
func (c Color) ToRGBAArray(dst []float32, offset int) []float32 {
	return put(dst, offset, c.rgb[0], c.rgb[1], c.rgb[2], c.alpha)
}

// ToBGRAArray is ToRGBAArray in blue, green, red, alpha order.
func (c Color) ToBGRAArray(dst []float32, offset int) []float32 {
	return put(dst, offset, c.rgb[2], c.rgb[1], c.rgb[0], c.alpha)
}

// ToHSVAArray writes hue, saturation, value and alpha at dst[offset:].
func (c Color) ToHSVAArray(dst []float32, offset int) []float32 {
	return put(dst, offset, c.hsv[0], c.hsv[1], c.hsv[2], c.alpha)
}

// ToCMYKAArray writes cyan, magenta, yellow, key and alpha (five values)
// at dst[offset:].
func (c Color) ToCMYKAArray(dst []float32, offset int) []float32 {
	return put(dst, offset, c.cmyk[0], c.cmyk[1], c.cmyk[2], c.cmyk[3], c.alpha)
}

func put(dst []float32, offset int, vals ...float64) []float32 {
	if offset < 0 {
		panic("ocolor: negative array offset")
	}
	if need := offset + len(vals); len(dst) < need {
		dst = append(dst, make([]float32, need-len(dst))...)
	}
	for i, v := range vals {
		dst[offset+i] = float32(v)
	}
	return dst
}
