package engine

// ApplicationConfig describes the window, logging and asset settings an
// application starts with. Loaded from TOML, every field has a usable
// default.
type ApplicationConfig struct {
	Name        string `toml:"name"`
	StartPosX   int    `toml:"start_pos_x"`
	StartPosY   int    `toml:"start_pos_y"`
	StartWidth  uint32 `toml:"start_width"`
	StartHeight uint32 `toml:"start_height"`

	LogLevel string `toml:"log_level"`

	AssetsDir   string `toml:"assets_dir"`
	WatchAssets bool   `toml:"watch_assets"`

	MouseSensitivity float32 `toml:"mouse_sensitivity"`
}
