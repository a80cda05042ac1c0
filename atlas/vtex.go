// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atlas

// virtualTexture is a single placed (or reserved-but-unplaced) entry in the
// atlas. A zero-area Rect means the id was generated by GenTexture but has
// not yet had space assigned to it.
type virtualTexture struct {
	id          uint32
	rect        Rect
	invalidated bool
}

// lookupVtex returns the index of the entry with the given id, or -1.
// Table sizes stay in the low hundreds in real use, so a linear scan beats
// the bookkeeping of a hash index.
func (a *Atlas) lookupVtex(id uint32) int {
	for i := range a.vtexes {
		if a.vtexes[i].id == id {
			return i
		}
	}
	return -1
}
