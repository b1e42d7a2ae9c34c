package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oliver-nowak/ocolor"
	"github.com/oliver-nowak/ocolor/internal/config"
)

// scheme is a palette built by fixed turns on the artistic wheel.
type scheme struct {
	name   string
	desc   string
	angles []float64
}

// schemes in the order the help lists them. "random" is handled apart.
var schemes = []scheme{
	{"complement", "the opposite color", []float64{180}},
	{"analogous", "neighbors 30° to either side", []float64{-30, 30}},
	{"triad", "three evenly spaced colors", []float64{120, 240}},
	{"split", "the two neighbors of the complement", []float64{150, 210}},
	{"tetrad", "two complementary pairs", []float64{90, 180, 270}},
}

const randomScheme = "random"

func schemeNames() []string {
	return append(lo.Map(schemes, func(s scheme, _ int) string { return s.name }), randomScheme)
}

// analogSettings drive the random scheme.
type analogSettings struct {
	angle, delta float64
	count        int
	seed         uint64
}

func analogFromConfig() analogSettings {
	return analogSettings{
		angle: viper.GetFloat64(config.KeyAnalogAngle),
		delta: viper.GetFloat64(config.KeyAnalogDelta),
		count: viper.GetInt(config.KeyAnalogCount),
		seed:  viper.GetUint64(config.KeyAnalogSeed),
	}
}

// harmony returns base followed by the colors of the named scheme.
func harmony(base ocolor.Color, name string, as analogSettings) ([]ocolor.Color, error) {
	if name == randomScheme {
		if as.count < 0 {
			return nil, fmt.Errorf("count must be >= 0, got %d", as.count)
		}
		seed := as.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		opt := ocolor.WithRand(rand.New(rand.NewPCG(seed, seed>>1|1)))
		return append([]ocolor.Color{base}, lo.Times(as.count, func(int) ocolor.Color {
			return base.Analog(as.angle, as.delta, opt)
		})...), nil
	}

	s, ok := lo.Find(schemes, func(s scheme) bool { return s.name == name })
	if !ok {
		return nil, fmt.Errorf("unknown scheme %q, want one of %v", name, schemeNames())
	}
	return append([]ocolor.Color{base}, lo.Map(s.angles, func(a float64, _ int) ocolor.Color {
		return base.RotateRYB(a)
	})...), nil
}

func newHarmonyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harmony <color>",
		Short: "Build a palette around a color on the artistic wheel",
		Long: "Build a palette by turning a color on the red-yellow-blue wheel.\n\nSchemes:\n" +
			lo.Reduce(schemes, func(acc string, s scheme, _ int) string {
				return acc + fmt.Sprintf("  %-11s %s\n", s.name, s.desc)
			}, "") +
			fmt.Sprintf("  %-11s %s\n", randomScheme, "analogous colors drawn at random"),
		Example: "  ocolor harmony '#ff0000' --scheme triad\n  ocolor harmony teal -s random --seed 42",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseColor(args[0])
			if err != nil {
				return err
			}
			name := lo.Must(cmd.Flags().GetString("scheme"))
			palette, err := harmony(base, name, analogFromConfig())
			if err != nil {
				return err
			}
			r := newRenderer()
			for _, c := range palette {
				fmt.Fprintln(cmd.OutOrStdout(), r.line(c, false))
			}
			return nil
		},
	}

	cmd.Flags().StringP("scheme", "s", "complement", "Palette scheme")
	lo.Must0(cmd.RegisterFlagCompletionFunc("scheme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return schemeNames(), cobra.ShellCompDirectiveNoFileComp
	}))

	cmd.Flags().Uint64("seed", 0, "Seed for the random scheme; 0 draws a fresh seed")
	lo.Must0(viper.BindPFlag(config.KeyAnalogSeed, cmd.Flags().Lookup("seed")))
	cmd.Flags().IntP("count", "n", 3, "Number of colors the random scheme draws")
	lo.Must0(viper.BindPFlag(config.KeyAnalogCount, cmd.Flags().Lookup("count")))

	return cmd
}
