package minesweeper

import (
	"flag"
)

// ConfigFlags are command line overrides applied on top of a config file.
// Negative numbers and empty strings mean "not set".
type ConfigFlags struct {
	Path string

	Width          int
	Height         int
	MineCount      int
	TicksPerSecond int
	Seed           string
}

func (f *ConfigFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", "", "path to a yaml config file")
	fs.IntVar(&f.Width, "width", -1, "board width")
	fs.IntVar(&f.Height, "height", -1, "board height")
	fs.IntVar(&f.MineCount, "mines", -1, "number of mines")
	fs.IntVar(&f.TicksPerSecond, "tps", -1, "game ticks per second")
	fs.StringVar(&f.Seed, "seed", "", "hex encoded 32 byte board seed")
}

func (f *ConfigFlags) Apply(cfg Config) Config {
	if f.Width >= 0 {
		cfg.Width = f.Width
	}
	if f.Height >= 0 {
		cfg.Height = f.Height
	}
	if f.MineCount >= 0 {
		cfg.MineCount = f.MineCount
	}
	if f.TicksPerSecond >= 0 {
		cfg.TicksPerSecond = f.TicksPerSecond
	}
	if f.Seed != "" {
		cfg.Seed = f.Seed
	}
	return cfg
}

// Load reads the config file, if any, applies the overrides and validates.
func (f *ConfigFlags) Load() (Config, error) {
	cfg := DefaultConfig()

	if f.Path != "" {
		var err error
		if cfg, err = LoadConfigFile(f.Path); err != nil {
			return cfg, err
		}
	}

	cfg = f.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
