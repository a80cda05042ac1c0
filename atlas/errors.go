// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atlas

import "errors"

// Sentinel errors returned by the atlas operations. None of them leave the
// atlas in a partially mutated state visible to the caller.
var (
	// ErrUnknownID is returned when an operation names a vtex id that was
	// never generated, or was destroyed and has since been purged by a
	// rebuild. A destroyed id is still found until that rebuild runs.
	ErrUnknownID = errors.New("texatlas: unknown virtual texture id")

	// ErrNoFit is returned by AllocateSpace when no hole is large enough
	// to hold the padded request.
	ErrNoFit = errors.New("texatlas: no hole large enough for request")

	// ErrGrowFailed is returned when a caller-supplied capacity ceiling
	// (see Options.MaxHoles and Options.MaxVtexes) would be exceeded by a
	// hole split or a new vtex slot.
	ErrGrowFailed = errors.New("texatlas: capacity limit exceeded")

	// ErrClosed is returned by any operation performed on an Atlas after
	// Close has already been called on it.
	ErrClosed = errors.New("texatlas: use of atlas after Close")
)
