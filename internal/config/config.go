package config

import (
	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging Logging `toml:"Logging"`
	Display Display `toml:"Display"`
}

type Logging struct {
	Level       string `toml:"Level"` // debug, info, warn, error
	File        string `toml:"File"`  // empty disables the file sink
	Development bool   `toml:"Development"`
	// rotation, see lumberjack.Logger
	MaxSizeMB  int  `toml:"MaxSizeMB"`
	MaxBackups int  `toml:"MaxBackups"`
	MaxAgeDays int  `toml:"MaxAgeDays"`
	Compress   bool `toml:"Compress"`
}

type Display struct {
	Color bool `toml:"Color"`
}

func Default() *Config {
	return &Config{
		Logging: Logging{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Display: Display{Color: true},
	}
}

// LoadConfig reads fn over the defaults. An empty fn yields the defaults.
func LoadConfig(fn string) (*Config, error) {
	config := Default()
	if fn == "" {
		return config, nil
	}
	if _, err := toml.DecodeFile(fn, config); err != nil {
		return nil, err
	}
	return config, nil
}
