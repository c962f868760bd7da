// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the bigcalc configuration file.
package config

import (
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/bigint"
	"github.com/pkg/errors"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config holds the bigcalc settings. The zero value is not valid; use Default
// or Load.
type Config struct {
	// Radix is the base used for input and output. 0 selects base 10 for
	// output and prefix detection for input.
	Radix int `toml:"radix"`
	// Color is one of "auto", "on" or "off".
	Color string `toml:"color"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFormat is "console" or "json".
	LogFormat string `toml:"log_format"`
	// Workers bounds the number of lines evaluated concurrently by batch.
	Workers int `toml:"workers"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Radix:     10,
		Color:     ColorAuto,
		LogLevel:  "warn",
		LogFormat: "console",
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Load returns the default configuration overridden by the values found in
// the TOML file at path. An empty path returns the defaults. Unknown keys are
// reported as errors.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err = c.Validate(); err != nil {
		return Config{}, errors.WithMessage(err, path)
	}
	return c, nil
}

// Validate checks that all values of c are within range.
func (c Config) Validate() error {
	if c.Radix != 0 && (c.Radix < 2 || c.Radix > bigint.MaxBase) {
		return errors.Wrapf(bigint.ErrRadix, "radix %d", c.Radix)
	}
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return errors.Errorf("invalid color mode %q", c.Color)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.Workers < 1 {
		return errors.Errorf("invalid number of workers %d", c.Workers)
	}
	return nil
}
