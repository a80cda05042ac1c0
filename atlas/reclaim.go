// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atlas

// rebuildHoles resets the hole list to the full page and re-splits it with
// every live, placed vtex rect, compacting invalidated entries out of the
// table along the way. It amortizes the cost of many DestroyVtex calls
// into a single pass, which is cheaper than incrementally merging holes on
// every deletion — merging free rectangles in 2D is not associative and
// would need a much heavier data structure to do online.
func (a *Atlas) rebuildHoles() error {
	// Clear the flag before the walk so a nested allocation failure during
	// re-splitting cannot loop back into rebuildHoles again.
	a.holesDirty = false
	a.resetHoles()

	for i := 0; i < len(a.vtexes); i++ {
		vt := &a.vtexes[i]

		if !vt.invalidated {
			if vt.rect.Area() == 0 {
				continue
			}
			if err := a.splitHoles(vt.rect); err != nil {
				a.holesDirty = true
				return err
			}
			continue
		}

		a.vtexes[i] = a.vtexes[len(a.vtexes)-1]
		a.vtexes = a.vtexes[:len(a.vtexes)-1]
		i--
	}

	return nil
}
