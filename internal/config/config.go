// Package config holds the ocolor command's settings: defaults, environment
// bindings and the optional config file, all through Viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// AppName prefixes environment variables and names the config file.
const AppName = "ocolor"

// Setting keys.
const (
	KeyVerbose        = "log.verbose"
	KeyColoredHelp    = "cli.colored_help"
	KeySwatch         = "output.swatch"
	KeySwatchWidth    = "output.swatch_width"
	KeyAnalogAngle    = "harmony.analog_angle"
	KeyAnalogDelta    = "harmony.analog_delta"
	KeyAnalogCount    = "harmony.analog_count"
	KeyAnalogSeed     = "harmony.seed"
	KeyHuesPrimary    = "hues.primary_only"
	KeyInspectPrimary = "inspect.primary_only"
)

// EnvKeyReplacer maps setting keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Field is one setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f Field) Env() string {
	return strings.ToUpper(AppName + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Default lists every setting.
var Default = map[string]Field{}

func init() {
	for _, f := range []Field{
		{KeyVerbose, false, "Write debug records from the color library to stderr"},
		{KeyColoredHelp, true, "Color the help output"},
		{KeySwatch, true, "Print a color swatch next to each color"},
		{KeySwatchWidth, 6, "Width of a swatch in cells"},
		{KeyAnalogAngle, 30.0, "Largest hue turn of an analogous color, in degrees on the artistic wheel"},
		{KeyAnalogDelta, 0.1, "Largest saturation and brightness change of an analogous color"},
		{KeyAnalogCount, 3, "Number of analogous colors to draw"},
		{KeyAnalogSeed, uint64(0), "Seed for analogous colors; 0 draws a fresh seed"},
		{KeyHuesPrimary, false, "List only the primary hues"},
		{KeyInspectPrimary, false, "Match colors against primary hues only"},
	} {
		Default[f.Key] = f
	}
}

// Setup installs defaults, binds OCOLOR_* environment variables and reads
// ocolor.toml from dir when it exists. An empty dir skips the file.
func Setup(dir string) error {
	viper.SetEnvPrefix(AppName)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
		if err := viper.BindEnv(name); err != nil {
			return err
		}
	}

	if dir == "" {
		return nil
	}
	viper.SetConfigName(AppName)
	viper.SetConfigType("toml")
	viper.AddConfigPath(dir)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}
