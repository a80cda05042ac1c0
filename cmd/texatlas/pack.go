// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-gl/texatlas/atlas"
	"github.com/go-gl/texatlas/profiler"
)

func newPackCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <manifest.yaml>",
		Short: "Pack a manifest's rectangles and print their assigned coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			m, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			var sampler *profiler.Sampler
			if cfg.Profile {
				sampler = profiler.NewSampler(log)
				defer sampler.Close()
			}

			a := atlas.New(cfg.Dimension, cfg.Padding, nil)
			defer a.Close()

			sampler.EventStart("pack")
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %6s %6s %6s %6s %8s %8s %8s %8s\n",
				"name", "x", "y", "w", "h", "u0", "v0", "u1", "v1")

			for _, e := range m.Textures {
				id, err := a.GenTexture()
				if err != nil {
					return fmt.Errorf("%s: %w", e.Name, err)
				}
				if err := a.AllocateSpace(id, e.Width, e.Height); err != nil {
					return fmt.Errorf("%s: %w", e.Name, err)
				}

				x, y, w, h, err := a.XYWH(id, false)
				if err != nil {
					return fmt.Errorf("%s: %w", e.Name, err)
				}
				u0, v0, u1, v1, err := a.UVST(id, false)
				if err != nil {
					return fmt.Errorf("%s: %w", e.Name, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %6d %6d %6d %6d %8.4f %8.4f %8.4f %8.4f\n",
					e.Name, x, y, w, h, u0, v0, u1, v1)
			}
			sampler.EventEnd("pack")
			sampler.SampleFrame()

			return nil
		},
	}
}
