package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oliver-nowak/ocolor"
	"github.com/oliver-nowak/ocolor/internal/config"
)

func newHuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hues [name]",
		Short: "List the named hues, or show one",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return lo.Map(ocolor.Hues(), func(h ocolor.Hue, _ int) string { return h.Name() }),
				cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				h, err := ocolor.HueByName(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, r.describe(ocolor.NewHSVFromHue(h, 1, 1), false))
				return nil
			}

			hues := ocolor.Hues()
			if viper.GetBool(config.KeyHuesPrimary) {
				hues = ocolor.PrimaryHues()
			}
			for _, h := range hues {
				c := ocolor.NewHSVFromHue(h, 1, 1)
				mark := lo.Ternary(h.IsPrimary(), "primary", "")
				fmt.Fprintf(out, "%s %-7s %5.1f°  ryb %5.1f°  %s\n",
					r.block(c), h.Name(), h.Degrees(), ocolor.HueToRYB(h.Degrees()), mark)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("primary", "p", false, "List only the primary hues")
	lo.Must0(viper.BindPFlag(config.KeyHuesPrimary, cmd.Flags().Lookup("primary")))
	return cmd
}
