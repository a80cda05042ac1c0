// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// manifestEntry names one rectangle to be packed.
type manifestEntry struct {
	Name   string `yaml:"name"`
	Width  uint16 `yaml:"width"`
	Height uint16 `yaml:"height"`
}

// manifest is the top-level shape of a pack manifest file.
type manifest struct {
	Textures []manifestEntry `yaml:"textures"`
}

func loadManifest(path string) (manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return manifest{}, fmt.Errorf("parse manifest: %w", err)
	}

	for i, e := range m.Textures {
		if e.Name == "" {
			return manifest{}, fmt.Errorf("manifest entry %d: missing name", i)
		}
		if e.Width == 0 || e.Height == 0 {
			return manifest{}, fmt.Errorf("manifest entry %q: width and height must be non-zero", e.Name)
		}
	}

	return m, nil
}
