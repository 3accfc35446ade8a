package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt.Buffer is not safe for concurrent use, so buffers are pooled.
type ximageParsedFont struct {
	font *opentype.Font
	bufs sync.Pool
}

func (f *ximageParsedFont) buffer() *sfnt.Buffer {
	if b, ok := f.bufs.Get().(*sfnt.Buffer); ok {
		return b
	}
	return &sfnt.Buffer{}
}

func (f *ximageParsedFont) release(b *sfnt.Buffer) {
	f.bufs.Put(b)
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	buf := f.buffer()
	defer f.release(buf)
	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64, hinting Hinting) float64 {
	buf := f.buffer()
	defer f.release(buf)

	advance, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), mapHinting(hinting))
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, ppem float64, hinting Hinting) Rect {
	buf := f.buffer()
	defer f.release(buf)

	bounds, _, err := f.font.GlyphBounds(buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), mapHinting(hinting))
	if err != nil {
		return Rect{}
	}

	return Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(a, b uint16, ppem float64, hinting Hinting) float64 {
	buf := f.buffer()
	defer f.release(buf)

	k, err := f.font.Kern(buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), floatToFixed(ppem), mapHinting(hinting))
	if err != nil {
		// sfnt.ErrNotFound when the font has no kern table.
		return 0
	}
	return fixedToFloat64(k)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64, hinting Hinting) Metrics {
	buf := f.buffer()
	defer f.release(buf)

	metrics, err := f.font.Metrics(buf, floatToFixed(ppem), mapHinting(hinting))
	if err != nil {
		return Metrics{}
	}

	return Metrics{
		Ascent:    fixedToFloat64(metrics.Ascent),
		Descent:   fixedToFloat64(metrics.Descent),
		LineGap:   fixedToFloat64(metrics.Height) - fixedToFloat64(metrics.Ascent) - fixedToFloat64(metrics.Descent),
		XHeight:   fixedToFloat64(metrics.XHeight),
		CapHeight: fixedToFloat64(metrics.CapHeight),
	}
}

// mapHinting converts our Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts float64 to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
