// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/imagetext"
	"github.com/gogpu/imagetext/text"
)

// PNG draws t into a new image sized to its bounding box plus the margin.
//
// Binary glyph modes ("1", "P", "I", "F") are drawn without antialiasing.
// Transposed fonts are drawn with the wrapped font and then rotated or
// flipped as a whole.
func PNG(t *text.Text, opts ...Option) (*image.NRGBA, error) {
	cfg := newConfig(opts)
	if tf, ok := t.Font().(*text.TransposedFont); ok {
		return pngTransposed(t, tf, cfg)
	}

	box, err := t.BBox(cfg.split...)
	if err != nil {
		return nil, err
	}
	fr := newFrame(box, cfg.margin)
	if fr.Empty() {
		return nil, ErrEmptyOutput
	}
	pens, err := t.Pens(cfg.split...)
	if err != nil {
		return nil, err
	}

	face, err := text.DrawFace(t.Font(), t.GlyphMode())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFont, err)
	}
	defer face.Close()

	binary := t.GlyphMode() == text.GlyphBinary
	img := imaging.New(fr.Width(), fr.Height(), cfg.background)
	if w := t.StrokeWidth(); w > 0 && t.Font().Kind() != text.KindBitmap {
		mask := drawMask(face, fr, pens, t.Direction(), strokeOffsets(w))
		composite(img, mask, cfg.strokeFill(t), binary)
	}
	mask := drawMask(face, fr, pens, t.Direction(), []image.Point{{}})
	composite(img, mask, cfg.fill, binary)

	imagetext.Logger().Debug("render: png",
		"width", fr.Width(), "height", fr.Height(), "lines", len(pens), "mode", t.GlyphMode())
	return img, nil
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func pngTransposed(t *text.Text, tf *text.TransposedFont, cfg config) (*image.NRGBA, error) {
	if _, ok := tf.Font().(*text.TransposedFont); ok {
		return nil, fmt.Errorf("%w: nested transposed font", ErrUnsupportedFont)
	}
	img, err := PNG(t.WithFont(tf.Font()), cfg.options()...)
	if err != nil {
		return nil, err
	}
	switch tf.Orientation() {
	case text.FlipLeftRight:
		return imaging.FlipH(img), nil
	case text.FlipTopBottom:
		return imaging.FlipV(img), nil
	case text.Rotate90:
		return imaging.Rotate90(img), nil
	case text.Rotate180:
		return imaging.Rotate180(img), nil
	case text.Rotate270:
		return imaging.Rotate270(img), nil
	case text.Transposed:
		return imaging.Transpose(img), nil
	case text.Transverse:
		return imaging.Transverse(img), nil
	default:
		return nil, fmt.Errorf("%w: orientation %v", ErrUnsupportedFont, tf.Orientation())
	}
}

// drawMask draws every pen once per offset into a coverage mask.
func drawMask(face font.Face, fr frame, pens []text.Pen, dir text.Direction, offsets []image.Point) *image.Alpha {
	mask := image.NewAlpha(fr.bounds)
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	for _, off := range offsets {
		for _, p := range pens {
			x, y := p.X+float64(off.X), p.Y+float64(off.Y)
			if dir == text.DirectionTTB {
				drawVertical(&d, fr.point(x, y), p.Text)
				continue
			}
			d.Dot = fr.point(x, y)
			d.DrawString(p.Text)
		}
	}
	return mask
}

// drawVertical stacks the characters of s downwards, each centered on
// the pen's x.
func drawVertical(d *font.Drawer, pen fixed.Point26_6, s string) {
	m := d.Face.Metrics()
	step := m.Ascent + m.Descent
	for _, r := range s {
		g := string(r)
		adv := d.MeasureString(g)
		d.Dot = fixed.Point26_6{X: pen.X - adv/2, Y: pen.Y + m.Ascent}
		d.DrawString(g)
		pen.Y += step
	}
}

// strokeOffsets returns the whole pixel offsets within radius w.
func strokeOffsets(w float64) []image.Point {
	r := int(math.Ceil(w))
	var offsets []image.Point
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) <= w*w {
				offsets = append(offsets, image.Pt(dx, dy))
			}
		}
	}
	return offsets
}

// composite paints c through mask onto img.
func composite(img *image.NRGBA, mask *image.Alpha, c color.Color, binary bool) {
	if binary {
		for i, a := range mask.Pix {
			if a >= 0x80 {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	draw.DrawMask(img, img.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}
