package config

// Logger tells a facade where its configuration lives.
// Empty fields fall back to the conventional locations.
type Logger struct {
	// PathsFile holds environment -> level key -> log file path.
	PathsFile string `yaml:"paths_file"`

	// FormatsFile holds environment -> {format, datefmt}.
	FormatsFile string `yaml:"formats_file"`
}

func (cfg *Logger) AdjustConfig() {
	if cfg.PathsFile == "" {
		cfg.PathsFile = DefaultPathsFile
	}
	if cfg.FormatsFile == "" {
		cfg.FormatsFile = DefaultFormatsFile
	}
}
