// Command wheeldemo renders the artistic (red-yellow-blue) color wheel
// with the named hues marked around it.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/oliver-nowak/ocolor"
	"github.com/oliver-nowak/ocolor/mathutil"
)

// wheelFill is the share of the half-width the wheel covers; the rest is
// room for labels.
const wheelFill = 0.78

func main() {
	var (
		size        = flag.Int("size", 512, "image width and height")
		supersample = flag.Int("supersample", 3, "supersampling factor")
		value       = flag.Float64("value", 1, "HSV value (brightness) of the wheel")
		labels      = flag.Bool("labels", true, "label the named hues")
		primaryOnly = flag.Bool("primary", false, "label only the primary hues")
		output      = flag.String("output", "wheel.png", "output file")
	)
	flag.Parse()

	ss := max(1, *supersample)
	big := renderWheel(*size*ss, *value)

	img := image.NewNRGBA(image.Rect(0, 0, *size, *size))
	draw.CatmullRom.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)

	if *labels {
		hues := ocolor.Hues()
		if *primaryOnly {
			hues = ocolor.PrimaryHues()
		}
		drawLabels(img, hues)
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Wheel saved to %s (%dx%d)\n", *output, *size, *size)
}

// renderWheel draws an n×n wheel. Angle is the position on the artistic
// wheel, clockwise from the top, and the distance from the center is the
// saturation. Pixels outside the wheel stay transparent.
func renderWheel(n int, value float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	center := float64(n) / 2
	radius := center * wheelFill
	base := ocolor.Red.WithBrightness(value)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			r := math.Hypot(dx, dy) / radius
			if r > 1 {
				continue
			}
			c := base.WithSaturation(r).RotateRYB(wheelAngle(dx, dy))
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}

// wheelAngle is the clockwise angle from the top in degrees, [0,360).
func wheelAngle(dx, dy float64) float64 {
	return mathutil.WrapDegrees(mathutil.Degrees(math.Atan2(dx, -dy)))
}

// drawLabels writes each hue's name just outside the wheel at its
// position on the artistic wheel.
func drawLabels(img *image.NRGBA, hues []ocolor.Hue) {
	face := basicfont.Face7x13
	size := img.Bounds().Dx()
	center := float64(size) / 2
	labelRadius := center*wheelFill + 6

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}),
		Face: face,
	}
	for _, h := range hues {
		angle := mathutil.Radians(ocolor.HueToRYB(h.Degrees()))
		x := center + math.Sin(angle)*labelRadius
		y := center - math.Cos(angle)*labelRadius

		w := d.MeasureString(h.Name())
		// Push the label outward so it never overlaps the wheel.
		x += (math.Sin(angle) - 1) * float64(w.Round()) / 2
		y += (1 - math.Cos(angle)) * float64(face.Ascent) / 2

		d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
		d.DrawString(h.Name())
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
