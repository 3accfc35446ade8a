package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BitmapFont is a fixed-size font drawn from prerendered glyph masks.
// It cannot be resized and ignores direction, features, language and
// stroke width.
type BitmapFont struct {
	face font.Face
}

// NewBitmapFont wraps a fixed-size x/image face.
func NewBitmapFont(face font.Face) *BitmapFont {
	return &BitmapFont{face: face}
}

// BasicFont returns the 7x13 bitmap font from x/image/font/basicfont.
func BasicFont() *BitmapFont {
	return &BitmapFont{face: basicfont.Face7x13}
}

// Kind implements Font.
func (f *BitmapFont) Kind() FontKind { return KindBitmap }

func (f *BitmapFont) private() {}

// Face returns the wrapped x/image face for drawing.
func (f *BitmapFont) Face() font.Face { return f.face }

// Metrics returns the face metrics.
func (f *BitmapFont) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(m.Height - m.Ascent - m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// Length implements Font. Bitmap advances are whole pixels.
func (f *BitmapFont) Length(s string, _ ShapeOptions) (float64, error) {
	return fixedToFloat64(font.MeasureString(f.face, s)), nil
}

// BBox implements Font. The stroke width is ignored.
func (f *BitmapFont) BBox(s string, _ ShapeOptions, anchor Anchor, _ float64) (Rect, error) {
	if err := anchor.check(); err != nil {
		return Rect{}, err
	}
	if s == "" {
		return Rect{}, nil
	}
	bounds, advance := font.BoundString(f.face, s)
	b := runBox{
		advance: fixedToFloat64(advance),
		metrics: f.Metrics(),
	}
	if bounds.Max.X > bounds.Min.X && bounds.Max.Y > bounds.Min.Y {
		b.hasInk = true
		b.ink = Rect{
			MinX: fixedToFloat64(bounds.Min.X),
			MinY: fixedToFloat64(bounds.Min.Y),
			MaxX: fixedToFloat64(bounds.Max.X),
			MaxY: fixedToFloat64(bounds.Max.Y),
		}
	}
	return b.anchored(anchor, false, 0)
}
