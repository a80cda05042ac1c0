// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command texatlas is a thin front-end for exercising an atlas.Atlas
// against a manifest of named rectangles, without any of the graphics-API
// binding the atlas core deliberately has nothing to do with.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
