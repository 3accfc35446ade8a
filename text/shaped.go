package text

// GlyphID is a glyph index within a font.
type GlyphID uint16

// ShapedGlyph represents a positioned glyph ready for measurement or drawing.
// Horizontal runs advance along X from the baseline origin.
// Vertical runs advance along Y; X and Y then locate the glyph's baseline
// origin relative to the center line.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the rune index in the source text.
	Cluster int

	// X is the horizontal position of the glyph origin.
	X float64

	// Y is the vertical position of the glyph origin.
	Y float64

	// XAdvance is the horizontal advance.
	XAdvance float64

	// YAdvance is the vertical advance (top-to-bottom text only).
	YAdvance float64
}

// runAdvance returns the pen advance of a shaped run.
func runAdvance(glyphs []ShapedGlyph, vertical bool) float64 {
	var adv float64
	for _, g := range glyphs {
		if vertical {
			adv += g.YAdvance
		} else {
			adv += g.XAdvance
		}
	}
	return adv
}
