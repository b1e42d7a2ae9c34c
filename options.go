package ocolor

import "math/rand/v2"

// AnalogOption configures Color.Analog.
//
// Example:
//
//	// Reproducible analogous colors
//	rng := rand.New(rand.NewPCG(1, 2))
//	c := ocolor.Red.Analog(30, 0.1, ocolor.WithRand(rng))
type AnalogOption func(*analogOptions)

// analogOptions holds optional configuration for Analog.
type analogOptions struct {
	rng *rand.Rand
}

// WithRand sets the random source used to pick the hue, saturation and
// brightness offsets. A nil source selects the global math/rand/v2 source.
func WithRand(r *rand.Rand) AnalogOption {
	return func(o *analogOptions) {
		o.rng = r
	}
}

func applyAnalogOptions(opts []AnalogOption) analogOptions {
	var o analogOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// normalizedRandom returns a value in [-1, 1).
func (o analogOptions) normalizedRandom() float64 {
	if o.rng == nil {
		return rand.Float64()*2 - 1
	}
	return o.rng.Float64()*2 - 1
}
