// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/go-gl/texatlas/config"
)

// cliFlags holds the persistent flags shared by every subcommand.
type cliFlags struct {
	configPath string
	dimension  uint16
	padding    uint16
	profile    bool
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:   "texatlas",
		Short: "Pack rectangles onto a single texture-atlas page",
	}

	var pf *pflag.FlagSet = root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", defaultConfigPath(), "path to config.toml")
	pf.Uint16Var(&flags.dimension, "dimension", 0, "atlas page dimension in pixels (0 = use config default)")
	pf.Uint16Var(&flags.padding, "padding", 0, "per-texture padding in pixels (0 = use config default)")
	pf.BoolVar(&flags.profile, "profile", false, "log per-stage timings while packing")

	root.AddCommand(newPackCmd(flags))
	root.AddCommand(newStatsCmd(flags))

	return root
}

func defaultConfigPath() string {
	return filepath.Join(config.Dir(), config.FileName())
}

// resolve merges the persistent flags over the on-disk config, following
// the same zero-value-means-unset convention config.Load uses for the
// file itself.
func (f *cliFlags) resolve() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.dimension != 0 {
		cfg.Dimension = f.dimension
	}
	if f.padding != 0 {
		cfg.Padding = f.padding
	}
	if f.profile {
		cfg.Profile = true
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if !cfg.Profile {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
