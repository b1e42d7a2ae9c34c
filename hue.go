package ocolor

import (
	"fmt"
	"math"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/oliver-nowak/ocolor/mathutil"
)

// PrimaryVariance is the default tolerance of IsPrimaryHue.
const PrimaryVariance = 0.01

// Hue is a named position on the hue circle.
type Hue struct {
	name     string
	position float64
	primary  bool
}

// Name returns the registered name, e.g. "yellow".
func (h Hue) Name() string { return h.name }

// Position returns the hue in [0,1).
func (h Hue) Position() float64 { return h.position }

// Degrees returns the hue in [0,360).
func (h Hue) Degrees() float64 { return h.position * 360 }

// IsPrimary reports whether the hue is one of the canonical primaries.
func (h Hue) IsPrimary() bool { return h.primary }

func (h Hue) String() string { return h.name }

// The named hues. Red, orange, yellow, green, blue, purple and pink are primary.
var (
	HueRed    = Hue{"red", 0, true}
	HueOrange = Hue{"orange", 30.0 / 360, true}
	HueYellow = Hue{"yellow", 60.0 / 360, true}
	HueLime   = Hue{"lime", 90.0 / 360, false}
	HueGreen  = Hue{"green", 120.0 / 360, true}
	HueTeal   = Hue{"teal", 150.0 / 360, false}
	HueCyan   = Hue{"cyan", 180.0 / 360, false}
	HueAzure  = Hue{"azure", 210.0 / 360, false}
	HueBlue   = Hue{"blue", 240.0 / 360, true}
	HueIndigo = Hue{"indigo", 270.0 / 360, false}
	HuePurple = Hue{"purple", 300.0 / 360, true}
	HuePink   = Hue{"pink", 330.0 / 360, true}
)

// registry holds every named hue in search order. NearestHue resolves
// ties to the entry that comes first here.
var registry = []Hue{
	HueRed, HueOrange, HueYellow, HueLime, HueGreen, HueTeal,
	HueCyan, HueAzure, HueBlue, HueIndigo, HuePurple, HuePink,
}

var primaries = lo.Filter(registry, func(h Hue, _ int) bool {
	return h.primary
})

var hueIndex = sync.OnceValue(func() map[string]Hue {
	return lo.KeyBy(registry, func(h Hue) string { return h.name })
})

// Hues returns all named hues in search order.
func Hues() []Hue {
	return append([]Hue(nil), registry...)
}

// PrimaryHues returns the primary hues in search order.
func PrimaryHues() []Hue {
	return append([]Hue(nil), primaries...)
}

// NearestHue returns the named hue closest to h on the hue circle.
// h is reduced into [0,1) first. With primaryOnly set only primary hues
// are considered. Ties go to the hue registered first (red, orange,
// yellow, lime, green, teal, cyan, azure, blue, indigo, purple, pink).
func NearestHue(h float64, primaryOnly bool) Hue {
	h = mathutil.Wrap01(h)
	candidates := registry
	if primaryOnly {
		candidates = primaries
	}
	return lo.MinBy(candidates, func(a, b Hue) bool {
		return hueDistance(a.position, h) < hueDistance(b.position, h)
	})
}

// hueDistance is the circular distance between two hues in [0,1).
func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

// HueByName returns the hue registered under name. The match is exact and
// case-sensitive; an unknown name returns an error wrapping ErrNotFound.
func HueByName(name string) (Hue, error) {
	h, ok := hueIndex()[name]
	if !ok {
		debug("HueByName", "hue not registered", "name", name)
		return Hue{}, fmt.Errorf("%w: hue %q", ErrNotFound, name)
	}
	return h, nil
}

// LookupHue is HueByName with an explicit found/not-found result.
func LookupHue(name string) mo.Option[Hue] {
	h, err := HueByName(name)
	if err != nil {
		return mo.None[Hue]()
	}
	return mo.Some(h)
}

// IsPrimaryHue reports whether a primary hue lies strictly within
// tolerance of h. The distance is absolute, not circular: 0.995 is not
// considered close to red at 0.
func IsPrimaryHue(h, tolerance float64) bool {
	return lo.ContainsBy(primaries, func(p Hue) bool {
		return math.Abs(h-p.position) < tolerance
	})
}
