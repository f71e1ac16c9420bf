package minesweeper

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"minesweep/misc"
)

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrTooManyMines     = errors.New("too many mines")
	ErrInvalidTickRate  = errors.New("invalid ticks per second")
	ErrInvalidSeed      = errors.New("invalid seed")
)

// Config is fixed once a Game is created.
type Config struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	MineCount      int `yaml:"mines"`
	TicksPerSecond int `yaml:"ticks_per_second"`

	// hex encoded, empty means a fresh random seed
	Seed string `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Width:          18,
		Height:         18,
		MineCount:      40,
		TicksPerSecond: 17,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBoardSize, c.Width, c.Height)
	}
	if c.MineCount < 0 || c.MineCount >= c.Width*c.Height {
		return fmt.Errorf("%w: %d mines on %dx%d board",
			ErrTooManyMines, c.MineCount, c.Width, c.Height)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTickRate, c.TicksPerSecond)
	}
	if c.Seed != "" {
		if _, err := ParseSeed(c.Seed); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig reads yaml on top of DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfigFile is LoadConfig for a file.
// A missing file yields DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	exists, err := misc.CheckFileExists(path)
	if err != nil {
		return DefaultConfig(), err
	}
	if !exists {
		misc.WarnLogger.Printf("config %s does not exist, using defaults", path)
		return DefaultConfig(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), err
	}
	defer file.Close()

	return LoadConfig(file)
}
