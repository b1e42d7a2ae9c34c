package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oliver-nowak/ocolor"
	"github.com/oliver-nowak/ocolor/internal/config"
	"github.com/oliver-nowak/ocolor/internal/srgb"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect <color>...",
		Aliases: []string{"i"},
		Short:   "Show every representation of one or more colors",
		Example: "  ocolor inspect '#ff8800' cornflowerblue 0x336699",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := make([]ocolor.Color, 0, len(args))
			for _, arg := range args {
				c, err := parseColor(arg)
				if err != nil {
					return err
				}
				colors = append(colors, c)
			}

			r := newRenderer()
			primary := viper.GetBool(config.KeyInspectPrimary)
			for _, c := range colors {
				fmt.Fprint(cmd.OutOrStdout(), r.describe(c, primary))
			}
			return nil
		},
	}

	cmd.Flags().BoolP("primary", "p", false, "Match against the primary hues only")
	lo.Must0(viper.BindPFlag(config.KeyInspectPrimary, cmd.Flags().Lookup("primary")))
	return cmd
}

func newLabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lab <L> <a> <b>",
		Short: "Convert a CIE L*a*b* color to sRGB",
		Long: "Convert a CIE L*a*b* color (L from 0 to 100, D65 white) to sRGB.\n" +
			"Colors outside the sRGB gamut are clipped and reported.",
		Example: "  ocolor lab 53.24 80.09 67.20\n  ocolor lab -- 50 -20 -30",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lab, err := parseFloats(args)
			if err != nil {
				return err
			}
			r, g, b := ocolor.LabToRGB(lab[0], lab[1], lab[2])
			rgb := [3]float64{r, g, b}
			c := ocolor.NewRGB(r, g, b)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, newRenderer().describe(c, false))
			if !inGamut(rgb) {
				fmt.Fprintf(out, "  clipped from %.3f %.3f %.3f\n", rgb[0], rgb[1], rgb[2])
			}
			return nil
		},
	}
}

// inGamut allows one 8-bit step of slack so rounding at the gamut edge is
// not reported as clipping.
func inGamut(rgb [3]float64) bool {
	return lo.EveryBy(rgb[:], func(v float64) bool {
		return v >= -srgb.Inv8Bit && v <= 1+srgb.Inv8Bit
	})
}
