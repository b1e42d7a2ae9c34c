package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/oliver-nowak/ocolor"
)

// parseColor reads a hex color ("#ff8800", "0xff8800") or a CSS color name.
// Input without a prefix is tried as a name first, so "tan" is a name and
// "fade" is hex.
func parseColor(s string) (ocolor.Color, error) {
	if strings.HasPrefix(s, "#") || strings.HasPrefix(strings.ToLower(s), "0x") {
		return ocolor.ParseHex(s)
	}
	c, nameErr := ocolor.NewNamed(s)
	if nameErr == nil {
		return c, nil
	}
	c, hexErr := ocolor.ParseHex(s)
	if hexErr == nil {
		return c, nil
	}
	return ocolor.Color{}, fmt.Errorf("%q is neither a color name nor hex: %w", s, errors.Join(nameErr, hexErr))
}

// parseFloats parses every argument as a float64.
func parseFloats(args []string) ([]float64, error) {
	var errs []error
	vals := lo.Map(args, func(a string, _ int) float64 {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q is not a number", a))
		}
		return v
	})
	return vals, errors.Join(errs...)
}
