package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// fixedParser parses any data into fixedParsedFont, a font whose glyphs
// are all size/2 wide and 7/10 of size tall, so layout results are exact.
type fixedParser struct{}

func (fixedParser) Parse([]byte) (ParsedFont, error) {
	return fixedParsedFont{}, nil
}

// fixedParsedFont metrics at size s:
//
//	advance  s/2 for every glyph
//	ink      [0, s/2] x [-7s/10, 0], none for spaces
//	ascent   s, descent s/5
//	kerning  "AV" is s/10 tighter
type fixedParsedFont struct{}

func (fixedParsedFont) Name() string { return "Fixed" }
func (fixedParsedFont) FullName() string { return "Fixed Test" }
func (fixedParsedFont) NumGlyphs() int { return 1 << 16 }
func (fixedParsedFont) UnitsPerEm() int { return 1000 }
func (fixedParsedFont) GlyphIndex(r rune) uint16 {
	return uint16(r) //nolint:gosec // test font covers the BMP only
}

func (fixedParsedFont) GlyphAdvance(_ uint16, ppem float64, _ Hinting) float64 {
	return ppem / 2
}

func (fixedParsedFont) GlyphBounds(gid uint16, ppem float64, _ Hinting) Rect {
	switch rune(gid) {
	case ' ', '\t', '\u00a0':
		return Rect{}
	}
	return Rect{MinX: 0, MinY: -7 * ppem / 10, MaxX: ppem / 2, MaxY: 0}
}

func (fixedParsedFont) Kern(a, b uint16, ppem float64, _ Hinting) float64 {
	if a == 'A' && b == 'V' {
		return -ppem / 10
	}
	return 0
}

func (fixedParsedFont) Metrics(ppem float64, _ Hinting) Metrics {
	return Metrics{Ascent: ppem, Descent: ppem / 5, CapHeight: 0.7 * ppem, XHeight: 0.5 * ppem}
}

func init() {
	RegisterParser("fixed", fixedParser{})
}

// fixedFont returns the fixed test font at size.
func fixedFont(t *testing.T, size float64) *OutlineFont {
	t.Helper()

	source, err := NewFontSource([]byte("fixed"), WithParser("fixed"))
	if err != nil {
		t.Fatalf("failed to create fixed font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source.Font(size)
}

// goRegular returns Go Regular at size.
func goRegular(t *testing.T, size float64) *OutlineFont {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source.Font(size)
}

// newFixedText creates a Text with the fixed font at size 10.
func newFixedText(t *testing.T, s string, opts ...TextOption) *Text {
	t.Helper()

	opts = append([]TextOption{WithFont(fixedFont(t, 10))}, opts...)
	txt, err := New(s, opts...)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", s, err)
	}
	return txt
}

// useShaper installs s as the global shaper for the duration of the test.
func useShaper(t *testing.T, s Shaper) {
	t.Helper()

	SetShaper(s)
	t.Cleanup(func() {
		SetShaper(nil)
	})
}
