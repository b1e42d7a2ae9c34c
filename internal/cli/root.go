// Package cli implements the ocolor command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oliver-nowak/ocolor"
	"github.com/oliver-nowak/ocolor/internal/config"
)

// NewRootCmd builds the command tree. Flags are bound into the global
// Viper instance, so config.Setup should run first.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Inspect colors and build palettes on the artistic color wheel",
		Long: "ocolor reads hex colors and CSS color names, shows them as RGB, HSV\n" +
			"and CMYK, and builds complementary and analogous palettes on the\n" +
			"red-yellow-blue wheel painters use.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), viper.GetBool(config.KeyVerbose))
		},
	}

	root.PersistentFlags().BoolP("verbose", "V", false, "Log library debug records to stderr")
	lo.Must0(viper.BindPFlag(config.KeyVerbose, root.PersistentFlags().Lookup("verbose")))
	root.PersistentFlags().Bool("swatch", true, "Print color swatches")
	lo.Must0(viper.BindPFlag(config.KeySwatch, root.PersistentFlags().Lookup("swatch")))

	root.AddCommand(newInspectCmd(), newHarmonyCmd(), newHuesCmd(), newLabCmd(), newVersionCmd())
	return root
}

// setupLogging routes the library's records to w when verbose is set and
// silences them otherwise.
func setupLogging(w io.Writer, verbose bool) {
	if !verbose {
		ocolor.SetLogger(nil)
		return
	}
	ocolor.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s/%s\n",
				config.AppName, ocolor.Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Execute runs the command line and exits non-zero on error.
func Execute() {
	root := NewRootCmd()
	if viper.GetBool(config.KeyColoredHelp) {
		cc.Init(&cc.Config{
			RootCmd:       root,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(strings.TrimSpace(err.Error())))
		os.Exit(1)
	}
}
