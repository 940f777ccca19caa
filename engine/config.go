package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/tableau/engine/core"
)

func defaultApplicationConfig() ApplicationConfig {
	return ApplicationConfig{
		Name:             "Tableau",
		StartPosX:        100,
		StartPosY:        100,
		StartWidth:       1000,
		StartHeight:      800,
		LogLevel:         "info",
		AssetsDir:        "assets",
		WatchAssets:      true,
		MouseSensitivity: 0.1,
	}
}

// LoadApplicationConfig reads a TOML config file. A missing file is not an
// error, the defaults apply; a file that exists but does not parse is.
func LoadApplicationConfig(path string) (ApplicationConfig, error) {
	config := defaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogInfo("no config file at %s, using defaults", path)
			return config, nil
		}
		return config, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if config.StartWidth == 0 || config.StartHeight == 0 {
		return config, fmt.Errorf("config %s: window dimensions must be non-zero", path)
	}
	return config, nil
}
