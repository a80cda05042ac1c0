// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPackCommandPrintsCoordinatesForEachEntry(t *testing.T) {
	path := writeManifest(t, `
textures:
  - name: player
    width: 64
    height: 64
  - name: tile
    width: 32
    height: 32
`)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--dimension", "256", "--padding", "0", "pack", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "player") || !strings.Contains(got, "tile") {
		t.Fatalf("output missing manifest entries:\n%s", got)
	}
}

func TestStatsCommandReportsOccupancy(t *testing.T) {
	path := writeManifest(t, `
textures:
  - name: a
    width: 64
    height: 64
`)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--dimension", "128", "--padding", "0", "stats", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "placed=1") {
		t.Fatalf("output missing placed count:\n%s", got)
	}
}
