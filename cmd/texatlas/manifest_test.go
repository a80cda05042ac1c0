// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestParsesEntries(t *testing.T) {
	path := writeManifest(t, `
textures:
  - name: player
    width: 64
    height: 64
  - name: tile
    width: 32
    height: 32
`)

	m, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if len(m.Textures) != 2 {
		t.Fatalf("len(Textures) = %d, want 2", len(m.Textures))
	}
	if m.Textures[0].Name != "player" || m.Textures[0].Width != 64 {
		t.Fatalf("unexpected first entry: %+v", m.Textures[0])
	}
}

func TestLoadManifestRejectsMissingDimensions(t *testing.T) {
	path := writeManifest(t, `
textures:
  - name: broken
    width: 0
    height: 16
`)

	if _, err := loadManifest(path); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestLoadManifestRejectsMissingName(t *testing.T) {
	path := writeManifest(t, `
textures:
  - width: 16
    height: 16
`)

	if _, err := loadManifest(path); err == nil {
		t.Fatal("expected error for missing name")
	}
}
