package ocolor

import (
	"math"
	"testing"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name               string
		c                  Color
		black, white, grey bool
	}{
		{"black", Black, true, false, true},
		{"near black", NewGray(0.05), true, false, true},
		{"black point", NewGray(BlackPoint), true, false, true},
		{"dark grey", NewGray(0.2), false, false, true},
		{"tinted dark", NewRGB(0.05, 0.04, 0.05), false, false, false},
		{"white", White, false, true, true},
		{"almost white", NewGray(0.99), false, false, true},
		{"red", Red, false, false, false},
		{"pale", NewRGB(1, 1, 0.995), false, false, true},
		{"hsv grey", NewHSV(0.6, 0, 0.4), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsBlack(); got != tt.black {
				t.Errorf("IsBlack() = %v, want %v", got, tt.black)
			}
			if got := tt.c.IsWhite(); got != tt.white {
				t.Errorf("IsWhite() = %v, want %v", got, tt.white)
			}
			if got := tt.c.IsGrey(); got != tt.grey {
				t.Errorf("IsGrey() = %v, want %v", got, tt.grey)
			}
		})
	}
}

func TestIsPrimary(t *testing.T) {
	tests := []struct {
		c    Color
		want bool
	}{
		{Red, true},
		{Yellow, true},
		{Green, true},
		{Blue, true},
		{Cyan, false},
		{Magenta, true},
		{NewHSV(0.004, 1, 1), true},
		{NewHSV(0.996, 1, 1), false},
		{NewHSV(90.0/360, 1, 1), false},
	}
	for _, tt := range tests {
		if got := tt.c.IsPrimary(); got != tt.want {
			t.Errorf("%v.IsPrimary() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestClosestHue(t *testing.T) {
	tests := []struct {
		c           Color
		primaryOnly bool
		want        Hue
	}{
		{Red, false, HueRed},
		{Cyan, false, HueCyan},
		{Cyan, true, HueGreen},
		{NewRGB(1, 0.5, 0), false, HueOrange},
		{NewRGB(0.5, 0, 1), false, HueIndigo},
		{NewRGB(0.5, 0, 1), true, HueBlue},
	}
	for _, tt := range tests {
		if got := tt.c.ClosestHue(tt.primaryOnly); got != tt.want {
			t.Errorf("%v.ClosestHue(%v) = %v, want %v", tt.c, tt.primaryOnly, got, tt.want)
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		c    Color
		want float64
	}{
		{Black, 0},
		{White, 1},
		{Red, 0.299},
		{Green, 0.587},
		{Blue, 0.114},
	}
	for _, tt := range tests {
		if got := tt.c.Luminance(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v.Luminance() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestDistances(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"RGB same", Red.DistanceRGB(Red), 0, 0},
		{"RGB black white", Black.DistanceRGB(White), math.Sqrt(3), 1e-12},
		{"RGB red blue", Red.DistanceRGB(Blue), math.Sqrt(2), 1e-12},
		{"HSV across wrap", NewHSV(0.01, 1, 1).DistanceHSV(NewHSV(0.99, 1, 1)), 2 * math.Sin(math.Pi*0.02), 1e-9},
		{"HSV opposite hues", Red.DistanceHSV(Cyan), 2, 1e-9},
		{"HSV grey hue ignored", NewHSV(0.1, 0, 0.5).DistanceHSV(NewHSV(0.6, 0, 0.5)), 0, 1e-12},
		{"CMYK black white", Black.DistanceCMYK(White), 1, 1e-12},
		{"CMYK red green", Red.DistanceCMYK(Green), math.Sqrt(2), 1e-12},
		{"Lab same", Blue.DistanceLab(Blue), 0, 0},
		{"Lab black white", Black.DistanceLab(White), 1, 1e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.tol {
				t.Errorf("distance = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a, b := NewRGB(0.1, 0.7, 0.3), NewHSV(0.8, 0.4, 0.9)
	if a.DistanceRGB(b) != b.DistanceRGB(a) {
		t.Error("DistanceRGB is not symmetric")
	}
	if math.Abs(a.DistanceHSV(b)-b.DistanceHSV(a)) > 1e-15 {
		t.Error("DistanceHSV is not symmetric")
	}
	if a.DistanceCMYK(b) != b.DistanceCMYK(a) {
		t.Error("DistanceCMYK is not symmetric")
	}
	if math.Abs(a.DistanceLab(b)-b.DistanceLab(a)) > 1e-12 {
		t.Error("DistanceLab is not symmetric")
	}
}
