// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/imagetext/text"
)

// frame maps layout coordinates to output pixels.
//
// The output covers the text bounding box rounded outwards to whole
// pixels and grown by the margin. Its top-left corner is pixel (0, 0).
type frame struct {
	bounds image.Rectangle
	dx, dy float64
}

func newFrame(box text.Rect, margin int) frame {
	minX := int(math.Floor(box.MinX)) - margin
	minY := int(math.Floor(box.MinY)) - margin
	maxX := int(math.Ceil(box.MaxX)) + margin
	maxY := int(math.Ceil(box.MaxY)) + margin
	return frame{
		bounds: image.Rect(0, 0, maxX-minX, maxY-minY),
		dx:     -float64(minX),
		dy:     -float64(minY),
	}
}

// Width returns the output width in pixels.
func (f frame) Width() int { return f.bounds.Dx() }

// Height returns the output height in pixels.
func (f frame) Height() int { return f.bounds.Dy() }

// Empty reports whether the output has no pixels.
func (f frame) Empty() bool { return f.bounds.Empty() }

// point converts a layout position to a 26.6 output position.
func (f frame) point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round((x + f.dx) * 64)),
		Y: fixed.Int26_6(math.Round((y + f.dy) * 64)),
	}
}
