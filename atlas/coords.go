// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atlas

// XYWH returns the pixel rectangle assigned to id. With includePadding
// false, the padding border is stripped so callers get the usable image
// region; with it true, the full padded (mirrored-border) region is
// returned instead.
func (a *Atlas) XYWH(id uint32, includePadding bool) (x, y, w, h uint16, err error) {
	if a.closed {
		return 0, 0, 0, 0, ErrClosed
	}
	idx := a.lookupVtex(id)
	if idx == -1 {
		return 0, 0, 0, 0, ErrUnknownID
	}

	r := a.vtexes[idx].rect
	x, y = r.Left, r.Up
	w = uint16(r.Width())
	h = uint16(r.Height())

	if !includePadding {
		p := a.padding
		x += p
		y += p
		w -= 2 * p
		h -= 2 * p
	}

	return x, y, w, h, nil
}

// UVST returns the normalized sampling bounds (u0, v0, u1, v1) for id:
// the pixel corners divided by the atlas dimension. Unlike the source,
// which strips padding by dividing by a ratio that algebraically reduces
// to the full dimension again (a no-op disguised as a correction), this
// applies the straightforward corner inset of padding/dim in normalized
// units (padding pixels, taken from XYWH).
func (a *Atlas) UVST(id uint32, includePadding bool) (u0, v0, u1, v1 float32, err error) {
	x, y, w, h, err := a.XYWH(id, includePadding)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	dim := float32(a.dim)
	u0 = float32(x) / dim
	v0 = float32(y) / dim
	u1 = float32(x+w) / dim
	v1 = float32(y+h) / dim
	return u0, v0, u1, v1, nil
}
