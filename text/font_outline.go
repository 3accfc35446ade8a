package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// OutlineFont is a scalable font at a specific size in pixels per em.
// It is a lightweight value that shares its FontSource's parsed data
// and run cache; fonts of other sizes are created with Variant.
//
// OutlineFont is immutable and safe for concurrent use.
type OutlineFont struct {
	source *FontSource
	size   float64
}

// NewOutlineFont creates an outline font from a source.
// It is equivalent to source.Font(size).
func NewOutlineFont(source *FontSource, size float64) *OutlineFont {
	return source.Font(size)
}

var (
	defaultFontOnce sync.Once
	defaultFont     *OutlineFont
)

// DefaultFont returns Go Regular at 10 pixels per em, the font used by
// Text values created without WithFont.
func DefaultFont() *OutlineFont {
	defaultFontOnce.Do(func() {
		src, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("text: embedded Go Regular font failed to parse: %v", err))
		}
		defaultFont = src.Font(10)
	})
	return defaultFont
}

// Kind implements Font.
func (f *OutlineFont) Kind() FontKind { return KindOutline }

func (f *OutlineFont) private() {}

// Size returns the nominal size in pixels per em.
func (f *OutlineFont) Size() float64 { return f.size }

// Source returns the FontSource this font was created from.
func (f *OutlineFont) Source() *FontSource { return f.source }

// Variant returns a font of the same source at another size.
func (f *OutlineFont) Variant(size float64) *OutlineFont {
	return &OutlineFont{source: f.source, size: size}
}

// Metrics returns the font metrics at this font's size.
func (f *OutlineFont) Metrics(mode GlyphMode) Metrics {
	return f.source.Parsed().Metrics(f.size, mode.hinting())
}

// String returns the font name and size.
func (f *OutlineFont) String() string {
	return fmt.Sprintf("%s %gpx", f.source.Name(), f.size)
}

// Length implements Font.
func (f *OutlineFont) Length(s string, opts ShapeOptions) (float64, error) {
	return runAdvance(f.shape(s, opts), opts.Direction.IsVertical()), nil
}

// BBox implements Font.
func (f *OutlineFont) BBox(s string, opts ShapeOptions, anchor Anchor, stroke float64) (Rect, error) {
	if err := anchor.check(); err != nil {
		return Rect{}, err
	}
	if s == "" {
		return Rect{}, nil
	}
	vertical := opts.Direction.IsVertical()
	return f.run(s, opts).anchored(anchor, vertical, stroke)
}

// run measures the ink and advance of a shaped line.
func (f *OutlineFont) run(s string, opts ShapeOptions) runBox {
	glyphs := f.shape(s, opts)
	parsed := f.source.Parsed()
	hinting := opts.Mode.hinting()

	b := runBox{
		advance: runAdvance(glyphs, opts.Direction.IsVertical()),
		metrics: parsed.Metrics(f.size, hinting),
	}
	for _, g := range glyphs {
		ink := parsed.GlyphBounds(uint16(g.GID), f.size, hinting)
		if ink.Empty() {
			continue
		}
		ink = ink.Translate(g.X, g.Y)
		if !b.hasInk {
			b.ink, b.hasInk = ink, true
			continue
		}
		b.ink = b.ink.Union(ink)
	}
	return b
}

// shape returns the shaped glyphs of s, consulting the source's run cache.
func (f *OutlineFont) shape(s string, opts ShapeOptions) []ShapedGlyph {
	if s == "" {
		return nil
	}
	key := measureKey{
		text:      s,
		size:      f.size,
		hinting:   opts.Mode.hinting(),
		direction: opts.Direction,
		features:  featureKey(opts.Features),
		language:  opts.Language,
		shaper:    shaperGen.Load(),
	}
	return f.source.runs.GetOrCreate(key, func() []ShapedGlyph {
		return Shape(s, f, opts)
	})
}
