// Copyright © 2026 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the CLI's tunable defaults. None of it affects
// core RSA semantics; it only decides where genkey/genprime/encrypt
// pull their digit length and iteration count from when the caller
// does not pass them explicitly.
package config

import (
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// DefaultDigits is the digit length used by `encrypt` when the caller
// omits one, matching the source's magic number.
const DefaultDigits = 50

// DefaultIterations is the Miller-Rabin round count used when the
// caller omits one.
const DefaultIterations = 3

// Config is the set of CLI-wide defaults, overridable by flag,
// environment variable (via viper's automatic env binding) or an
// optional YAML file.
type Config struct {
	DefaultDigits     int `yaml:"defaultDigits"`
	DefaultIterations int `yaml:"defaultIterations"`
}

// Defaults returns the built-in Config before any overrides are
// applied.
func Defaults() Config {
	return Config{
		DefaultDigits:     DefaultDigits,
		DefaultIterations: DefaultIterations,
	}
}

// Load builds a Config from viper-bound flags/env, optionally
// overridden by the YAML file at path (skipped if path is empty).
func Load(path string) (Config, error) {
	cfg := Defaults()
	viper.SetEnvPrefix("rsacore")
	viper.AutomaticEnv()
	if d := viper.GetInt("digits"); d != 0 {
		cfg.DefaultDigits = d
	}
	if n := viper.GetInt("iterations"); n != 0 {
		cfg.DefaultIterations = n
	}

	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var current = Defaults()

// Current returns the Config installed by the most recent SetCurrent
// call, or the built-in defaults if SetCurrent was never called.
func Current() Config {
	return current
}

// SetCurrent installs cfg as the Config subcommands read their
// digit-length and iteration defaults from. The CLI calls this once,
// in its PersistentPreRunE, after Load resolves flags/env/YAML.
func SetCurrent(cfg Config) {
	current = cfg
}
