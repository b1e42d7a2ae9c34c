package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/oliver-nowak/ocolor"
	"github.com/oliver-nowak/ocolor/internal/config"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true).Width(6)
	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderer formats colors for the terminal.
type renderer struct {
	swatch bool
	width  int
}

func newRenderer() renderer {
	return renderer{
		swatch: viper.GetBool(config.KeySwatch),
		width:  max(1, viper.GetInt(config.KeySwatchWidth)),
	}
}

// block paints c as a run of background-colored cells, or nothing when
// swatches are off.
func (r renderer) block(c ocolor.Color) string {
	if !r.swatch {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#" + c.Hex())).
		Render(strings.Repeat(" ", r.width))
}

// line is the one-line form: swatch, hex and nearest hue.
func (r renderer) line(c ocolor.Color, primaryOnly bool) string {
	parts := []string{titleStyle.Render("#" + c.Hex()), c.ClosestHue(primaryOnly).Name()}
	if b := r.block(c); b != "" {
		parts = append([]string{b}, parts...)
	}
	return strings.Join(parts, "  ")
}

// describe lists every representation of c.
func (r renderer) describe(c ocolor.Color, primaryOnly bool) string {
	var sb strings.Builder
	sb.WriteString(r.line(c, primaryOnly))
	switch {
	case c.IsBlack():
		sb.WriteString(" (black)")
	case c.IsWhite():
		sb.WriteString(" (white)")
	case c.IsGrey():
		sb.WriteString(" (grey)")
	case c.IsPrimary():
		sb.WriteString(" (primary)")
	}
	sb.WriteByte('\n')

	red, green, blue := c.RGB()
	h, s, v := c.HSV()
	cy, m, y, k := c.CMYK()
	rows := []struct {
		label string
		value string
	}{
		{"rgb", fmt.Sprintf("%.3f %.3f %.3f", red, green, blue)},
		{"hsv", fmt.Sprintf("%.1f° %.3f %.3f", h*360, s, v)},
		{"ryb", fmt.Sprintf("%.1f°", ocolor.HueToRYB(h*360))},
		{"cmyk", fmt.Sprintf("%.3f %.3f %.3f %.3f", cy, m, y, k)},
		{"argb", fmt.Sprintf("%#08x", c.ToARGB())},
		{"alpha", fmt.Sprintf("%.3f", c.Alpha())},
		{"luma", fmt.Sprintf("%.3f", c.Luminance())},
	}
	for _, row := range rows {
		sb.WriteString("  " + labelStyle.Render(row.label) + row.value + "\n")
	}
	return sb.String()
}
