// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads and saves the atlas defaults (page dimension,
// per-texture padding, whether to enable the profiler) that the
// cmd/texatlas front-end reads on startup. It follows the same
// TOML-plus-XDG-directory shape as NoiseTorch's config.go, generalized
// from a single hardcoded audio-app config to an atlas-specific one.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables an atlas is created with.
type Config struct {
	Dimension uint16 `toml:"dimension"`
	Padding   uint16 `toml:"padding"`
	Profile   bool   `toml:"profile"`
}

const fileName = "config.toml"

// DefaultConfig returns the settings used when no config file exists yet.
func DefaultConfig() Config {
	return Config{
		Dimension: 2048,
		Padding:   1,
		Profile:   false,
	}
}

// Dir resolves the config directory: $XDG_CONFIG_HOME/texatlas if set and
// present, otherwise $HOME/.config/texatlas.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" || !exists(base) {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "texatlas")
}

// EnsureDir creates the config directory if it does not already exist.
func EnsureDir() error {
	return os.MkdirAll(Dir(), 0o700)
}

// Load decodes the TOML config file at path. Any field left at its zero
// value after decoding (including a missing file, where decoding is
// skipped entirely) is filled in from DefaultConfig.
func Load(path string) (Config, error) {
	cfg := Config{}

	if exists(path) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	def := DefaultConfig()
	if cfg.Dimension == 0 {
		cfg.Dimension = def.Dimension
	}
	if cfg.Padding == 0 {
		cfg.Padding = def.Padding
	}

	return cfg, nil
}

// Save encodes cfg as TOML to path.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// FileName is the conventional config file name within Dir().
func FileName() string { return fileName }

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
