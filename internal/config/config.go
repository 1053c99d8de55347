// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the binops command line settings.
//
// Settings are read from a YAML file, or from a JSON file that may contain
// comments (JSONC), then overridden by environment variables. Command line
// flags are applied last by the caller.
//
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Environment variables.
//
const (
	EnvConfig   = "BINOPS_CONFIG"
	EnvEngine   = "BINOPS_ENGINE"
	EnvOutput   = "BINOPS_OUTPUT"
	EnvCarryIn  = "BINOPS_CARRY_IN"
	EnvMaxSteps = "BINOPS_MAX_STEPS"
)

// Output formats.
//
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the command line settings.
//
type Config struct {
	// Engine is "logic" or "gates".
	Engine string `yaml:"engine" json:"engine"`
	// Output is "text" or "json".
	Output string `yaml:"output" json:"output"`
	// CarryIn is the default carry-in of the CLA adder, "0" or "1".
	CarryIn string `yaml:"carry_in" json:"carry_in"`
	// MaxSteps bounds gate circuit simulations.
	MaxSteps int `yaml:"max_steps" json:"max_steps"`
}

// Default returns the default settings.
//
func Default() Config {
	return Config{
		Engine:   "logic",
		Output:   OutputText,
		CarryIn:  "0",
		MaxSteps: 64,
	}
}

// DefaultPath returns the path of the default configuration file, or an empty
// string if there is no user configuration directory.
//
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "binops", "config.yaml")
}

// Load returns the default settings merged with the content of the
// configuration file and environment overrides.
//
// If path is empty, the file named by $BINOPS_CONFIG is used, then
// DefaultPath. Only a missing default file is silently ignored.
//
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, explicit = DefaultPath(), false
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fc Config
			if err = decode(path, data, &fc); err != nil {
				return cfg, errors.Wrap(err, path)
			}
			Merge(&cfg, fc)
		case os.IsNotExist(err) && !explicit:
		default:
			return cfg, errors.Wrap(err, "read configuration")
		}
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, data []byte, c *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// Merge copies the non-zero fields of src into dst.
//
func Merge(dst *Config, src Config) {
	if src.Engine != "" {
		dst.Engine = src.Engine
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.CarryIn != "" {
		dst.CarryIn = src.CarryIn
	}
	if src.MaxSteps != 0 {
		dst.MaxSteps = src.MaxSteps
	}
}

// ApplyEnvOverrides overrides cfg with the BINOPS_* environment variables.
//
func ApplyEnvOverrides(cfg *Config) error {
	var env Config
	env.Engine = strings.TrimSpace(os.Getenv(EnvEngine))
	env.Output = strings.TrimSpace(os.Getenv(EnvOutput))
	env.CarryIn = strings.TrimSpace(os.Getenv(EnvCarryIn))
	if v := strings.TrimSpace(os.Getenv(EnvMaxSteps)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvMaxSteps)
		}
		env.MaxSteps = n
	}
	Merge(cfg, env)
	return nil
}

// Validate checks that all settings have a supported value.
//
func (c Config) Validate() error {
	switch c.Engine {
	case "logic", "gates":
	default:
		return errors.Errorf("invalid engine %q: valid values are logic, gates", c.Engine)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.Errorf("invalid output format %q: valid values are text, json", c.Output)
	}
	if c.CarryIn != "0" && c.CarryIn != "1" {
		return errors.Errorf("invalid carry-in %q: must be 0 or 1", c.CarryIn)
	}
	if c.MaxSteps <= 0 {
		return errors.Errorf("invalid max_steps %d: must be positive", c.MaxSteps)
	}
	return nil
}
