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

func newStatsCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <manifest.yaml>",
		Short: "Pack a manifest and report hole count and occupancy",
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

			sampler.EventStart("stats")

			var usedArea int
			var failed int
			for _, e := range m.Textures {
				id, err := a.GenTexture()
				if err != nil {
					return err
				}
				if err := a.AllocateSpace(id, e.Width, e.Height); err != nil {
					failed++
					continue
				}
				_, _, w, h, err := a.XYWH(id, true)
				if err != nil {
					return err
				}
				usedArea += int(w) * int(h)
			}

			sampler.EventEnd("stats")
			sampler.SampleFrame()

			pageArea := int(cfg.Dimension) * int(cfg.Dimension)
			occupancy := 0.0
			if pageArea > 0 {
				occupancy = float64(usedArea) / float64(pageArea)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "placed=%d failed=%d holes=%d occupancy=%.2f%%\n",
				len(m.Textures)-failed, failed, a.HoleCount(), occupancy*100)
			return nil
		},
	}
}
