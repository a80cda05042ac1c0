// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mirror implements the pixel-buffer pre-processor that surrounds a
// texture with the border an atlas.Atlas reserves via its padding setting.
// It is a pure pixel transform: it knows nothing about where on a page the
// padded buffer will land, only how wide the border is and whether it
// should be mirrored or edge-clamped on each axis.
package mirror

import (
	"image"
	"image/color"
	"image/draw"
)

// Pad returns a new RGBA buffer padding pixels larger than src on every
// side. When mirrorX (mirrorY) is set, the left/right (top/bottom) border
// is filled by reflecting src's own pixels across that edge; otherwise the
// border repeats the outermost row or column (edge clamp). Corners use the
// reflection of whichever axes are mirrored, falling back to a clamped
// corner pixel on axes that are not.
func Pad(src *image.RGBA, padding int, mirrorX, mirrorY bool) *image.RGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w+2*padding, h+2*padding))

	// Interior: a straight copy of src, offset by the border.
	draw.Draw(dst, image.Rect(padding, padding, padding+w, padding+h), src, sb.Min, draw.Src)

	if padding == 0 {
		return dst
	}

	// Left and right borders for the interior rows only (corners are left
	// to the next pass), sourced from src's own columns.
	for y := 0; y < h; y++ {
		dy := padding + y
		for p := 1; p <= padding; p++ {
			dst.Set(padding-p, dy, borderPixel(src, sb, mirrorX, -p, y))
			dst.Set(padding+w-1+p, dy, borderPixel(src, sb, mirrorX, w-1+p, y))
		}
	}

	// Top and bottom borders across the full padded width, corners
	// included; each corner pixel is resolved from src on both axes.
	for x := 0; x < w+2*padding; x++ {
		for p := 1; p <= padding; p++ {
			srcX := x - padding
			dst.Set(x, padding-p, cornerPixel(src, sb, mirrorX, mirrorY, srcX, -p))
			dst.Set(x, padding+h-1+p, cornerPixel(src, sb, mirrorX, mirrorY, srcX, h-1+p))
		}
	}

	return dst
}

// borderPixel resolves the color for a horizontal border sample at
// (srcX, srcY) relative to src's own coordinate space; srcY is always
// interior when called from the left/right pass.
func borderPixel(src *image.RGBA, sb image.Rectangle, mirror bool, srcX, srcY int) color.Color {
	w := sb.Dx()
	if mirror {
		srcX = reflect(srcX, w)
	} else {
		srcX = clamp(srcX, w)
	}
	return src.At(sb.Min.X+srcX, sb.Min.Y+srcY)
}

// cornerPixel resolves a vertical-border (and corner) sample. srcY is
// first reflected or clamped into range. When srcX falls inside [0,w) the
// sample is read from src at that column; otherwise it is a corner, and
// srcX is reflected or clamped exactly as the horizontal pass does.
func cornerPixel(src *image.RGBA, sb image.Rectangle, mirrorX, mirrorY bool, srcX, srcY int) color.Color {
	w, h := sb.Dx(), sb.Dy()

	resolvedY := srcY
	if mirrorY {
		resolvedY = reflect(srcY, h)
	} else {
		resolvedY = clamp(srcY, h)
	}

	if srcX >= 0 && srcX < w {
		return src.At(sb.Min.X+srcX, sb.Min.Y+resolvedY)
	}

	resolvedX := srcX
	if mirrorX {
		resolvedX = reflect(srcX, w)
	} else {
		resolvedX = clamp(srcX, w)
	}
	return src.At(sb.Min.X+resolvedX, sb.Min.Y+resolvedY)
}

// reflect maps an out-of-range coordinate back into [0, n) by bouncing off
// the edge it crossed, repeating the boundary pixel itself (a "duplicate
// edge" mirror, matching what a bilinear sampler needs for seamless tiling
// across the padding border).
func reflect(v, n int) int {
	if n <= 1 {
		return 0
	}
	if v < 0 {
		return reflect(-v-1, n)
	}
	if v >= n {
		return reflect(2*n-v-1, n)
	}
	return v
}

// clamp pins an out-of-range coordinate to the nearest in-range value.
func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
