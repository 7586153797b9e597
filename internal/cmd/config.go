package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// settings are operator defaults that flags override.
type settings struct {
	OutputDir string
	Overwrite bool
	Long      bool
}

func defaultSettings() settings {
	return settings{OutputDir: "."}
}

type fileConfig struct {
	OutputDir string `toml:"output_dir"`
	Overwrite bool   `toml:"overwrite"`
	Long      bool   `toml:"long"`
}

func loadSettings(path string) (settings, error) {
	cfg := defaultSettings()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return settings{}, fmt.Errorf("load pakctl config: %w", err)
	}

	if meta.IsDefined("output_dir") {
		dir := strings.TrimSpace(raw.OutputDir)
		if dir != "" {
			cfg.OutputDir = dir
		}
	}
	if meta.IsDefined("overwrite") {
		cfg.Overwrite = raw.Overwrite
	}
	if meta.IsDefined("long") {
		cfg.Long = raw.Long
	}
	return cfg, nil
}

// settingsFromCmd resolves the persistent --config flag into settings,
// returning defaults when no config file is given.
func settingsFromCmd(cmd *cobra.Command) (settings, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return defaultSettings(), nil
	}
	return loadSettings(path)
}
