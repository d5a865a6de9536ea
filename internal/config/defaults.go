package config

const (
	defaultConfigPath         = "~/.config/alcfg/config.toml"
	projectConfigName         = "alcfg.toml"
	defaultPreferredSubstring = "sharecfgdata"
	defaultOutputDir          = "."
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultUnknownTitle       = "未知标题"
	defaultUngrouped          = "未分组剧情"
	defaultUnknownGroup       = "未知组"
	defaultUnknownSkin        = "未知皮肤"
)

// defaultSearchPaths lists the export directories probed for input tables, in priority order.
func defaultSearchPaths() []string {
	return []string{
		".",
		"sharecfgdata",
		"raw-data/CN/sharecfgdata",
		"ShareCfg",
		"raw-data/CN/ShareCfg",
		"GameCfg",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SearchPaths:        defaultSearchPaths(),
			PreferredSubstring: defaultPreferredSubstring,
			OutputDir:          defaultOutputDir,
		},
		Outputs: Outputs{
			Combined: true,
			Voice:    true,
			Story:    true,
			Aux:      true,
		},
		Labels: Labels{
			UnknownTitle: defaultUnknownTitle,
			Ungrouped:    defaultUngrouped,
			UnknownGroup: defaultUnknownGroup,
			UnknownSkin:  defaultUnknownSkin,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
