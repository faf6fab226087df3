// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Report ReportConfig `toml:"report"`
	Top    TopConfig    `toml:"top"`
}

// ReportConfig maps report-related settings. Nil fields are unset.
type ReportConfig struct {
	CountLines      *bool `toml:"count-lines"`
	CountChars      *bool `toml:"count-chars"`
	CountEmptyLines *bool `toml:"count-empty-lines"`
	CountFreq       *bool `toml:"count-freq"`
	Verbose         *bool `toml:"verbose"`
}

// TopConfig maps settings for the top command.
type TopConfig struct {
	N *int `toml:"n"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if cfg.Top.N != nil && *cfg.Top.N < 0 {
		return FileConfig{}, fmt.Errorf("top.n must be >= 0")
	}
	return cfg, nil
}
