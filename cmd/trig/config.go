package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = "trig-analyse.toml"

type cliConfig struct {
	Defaults struct {
		Terms  int `toml:"terms"`
		Digits int `toml:"digits"`
	} `toml:"defaults"`
}

func defaultConfig() cliConfig {
	var c cliConfig
	c.Defaults.Terms = 24
	c.Defaults.Digits = 12
	return c
}

// loadConfig reads a TOML config. A missing file is only an error when it
// was named explicitly; the implicit default is optional.
func loadConfig(path string) (cliConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	c := defaultConfig()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return cliConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if c.Defaults.Terms < 1 {
		return cliConfig{}, fmt.Errorf("%s: defaults.terms must be at least 1", path)
	}
	if c.Defaults.Digits < 0 {
		return cliConfig{}, fmt.Errorf("%s: defaults.digits must not be negative", path)
	}
	return c, nil
}
