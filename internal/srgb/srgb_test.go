package srgb

import (
	"math"
	"testing"
)

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// TestDecodeEdgeCases tests edge cases for sRGB to linear conversion.
func TestDecodeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("Decode(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestEncodeEdgeCases tests edge cases for linear to sRGB conversion.
func TestEncodeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055},
		{"negative stays linear", -0.1, -0.1 * 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input)
			if !floatNear(got, tt.want, 1e-9) {
				t.Errorf("Encode(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestRoundTrip tests that every 8-bit level survives decode and encode.
func TestRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float64(i) / 255.0
		got := Encode(Decode(s))
		if !floatNear(got, s, 1e-9) {
			t.Errorf("round trip of %d/255: got %v, want %v", i, got, s)
		}
	}
}

func TestXYZToLinearWhite(t *testing.T) {
	r, g, b := XYZToLinear(WhiteX, WhiteY, WhiteZ)
	for i, v := range []float64{r, g, b} {
		if !floatNear(v, 1, 2e-3) {
			t.Errorf("channel %d of D65 white = %v, want ~1", i, v)
		}
	}
}

func TestExpand(t *testing.T) {
	if got := Expand(0); got != 0 {
		t.Errorf("Expand(0) = %v, want 0", got)
	}
	if got := Expand(255); !floatNear(got, 1, 1e-12) {
		t.Errorf("Expand(255) = %v, want 1", got)
	}
}

// TestTruncateAllLevels checks that Truncate inverts Expand for all 256 levels.
func TestTruncateAllLevels(t *testing.T) {
	for i := 0; i <= 255; i++ {
		u := uint8(i)
		if got := Truncate(Expand(u)); got != u {
			t.Errorf("Truncate(Expand(%d)) = %d", u, got)
		}
	}
}

func TestTruncateClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{math.NaN(), 0},
		{0.999, 254},
		{1, 255},
		{4, 255},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in); got != tt.want {
			t.Errorf("Truncate(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(0.5); got != 128 {
		t.Errorf("Round(0.5) = %d, want 128", got)
	}
	if got := Round(-0.2); got != 0 {
		t.Errorf("Round(-0.2) = %d, want 0", got)
	}
	if got := Round16(1); got != 0xffff {
		t.Errorf("Round16(1) = %d, want 65535", got)
	}
	if got := Round16(0.5); got != 32768 {
		t.Errorf("Round16(0.5) = %d, want 32768", got)
	}
}
