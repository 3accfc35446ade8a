// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/gogpu/imagetext"
	"github.com/gogpu/imagetext/text"
)

// Layout pixels are CSS pixels: 96 per inch.
const (
	mmPerPx = 25.4 / 96
	ptPerPx = 72.0 / 96
)

// PDF draws t onto a single PDF page sized to its bounding box plus the
// margin and writes the document to w.
//
// Only outline fonts can be embedded. The stroke width of t widens the
// page but no outline is drawn.
func PDF(w io.Writer, t *text.Text, opts ...Option) error {
	cfg := newConfig(opts)
	of, ok := t.Font().(*text.OutlineFont)
	if !ok {
		return fmt.Errorf("%w: %s font in pdf", ErrUnsupportedFont, t.Font().Kind())
	}

	box, err := t.BBox(cfg.split...)
	if err != nil {
		return err
	}
	fr := newFrame(box, cfg.margin)
	if fr.Empty() {
		return ErrEmptyOutput
	}
	pens, err := t.Pens(cfg.split...)
	if err != nil {
		return err
	}

	family := canvas.NewFontFamily(of.Source().Name())
	if err := family.LoadFont(of.Source().Data(), 0, canvas.FontRegular); err != nil {
		return fmt.Errorf("render: load font %q: %w", of.Source().Name(), err)
	}
	face := family.Face(of.Size()*ptPerPx, cfg.fill, canvas.FontRegular, canvas.FontNormal)

	width, height := float64(fr.Width())*mmPerPx, float64(fr.Height())*mmPerPx
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetFillColor(cfg.background)
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))

	metrics := of.Metrics(t.GlyphMode())
	for _, p := range pens {
		x, y := p.X+fr.dx, p.Y+fr.dy
		if t.Direction() != text.DirectionTTB {
			ctx.DrawText(x*mmPerPx, y*mmPerPx, canvas.NewTextLine(face, p.Text, canvas.Left))
			continue
		}
		for _, r := range p.Text {
			ctx.DrawText(x*mmPerPx, (y+metrics.Ascent)*mmPerPx, canvas.NewTextLine(face, string(r), canvas.Center))
			y += metrics.Ascent + metrics.Descent
		}
	}

	writer := pdf.New(w, width, height, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("render: write pdf: %w", err)
	}
	imagetext.Logger().Debug("render: pdf", "width_mm", width, "height_mm", height, "lines", len(pens))
	return nil
}
