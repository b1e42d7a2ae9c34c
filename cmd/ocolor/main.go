// Command ocolor inspects colors and builds palettes from the terminal.
package main

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/oliver-nowak/ocolor/internal/cli"
	"github.com/oliver-nowak/ocolor/internal/config"
)

func main() {
	lo.Must0(config.Setup(configDir()))
	cli.Execute()
}

// configDir is where ocolor.toml lives, e.g. ~/.config/ocolor.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, config.AppName)
}
