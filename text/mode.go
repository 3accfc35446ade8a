package text

// ImageMode names the color mode of the image text is drawn into,
// using the conventional mode strings ("1", "L", "P", "RGB", "RGBA", ...).
type ImageMode string

// Common image modes.
const (
	ModeBilevel   ImageMode = "1"
	ModeGray      ImageMode = "L"
	ModeGrayAlpha ImageMode = "LA"
	ModePalette   ImageMode = "P"
	ModeInt32     ImageMode = "I"
	ModeFloat32   ImageMode = "F"
	ModeRGB       ImageMode = "RGB"
	ModeRGBA      ImageMode = "RGBA"
	ModeCMYK      ImageMode = "CMYK"
)

// supportsEmbeddedColor reports whether color glyphs can be drawn in m.
func (m ImageMode) supportsEmbeddedColor() bool {
	return m == ModeRGB || m == ModeRGBA
}

// GlyphMode is the rendering class of glyphs for a given image mode.
type GlyphMode int

const (
	// GlyphGrayscale renders antialiased coverage masks.
	GlyphGrayscale GlyphMode = iota
	// GlyphBinary renders 1-bit masks with hinted outlines.
	GlyphBinary
	// GlyphColor renders embedded color glyphs (emoji) where available.
	GlyphColor
)

// String returns the string representation of the glyph mode.
func (m GlyphMode) String() string {
	switch m {
	case GlyphGrayscale:
		return "Grayscale"
	case GlyphBinary:
		return "Binary"
	case GlyphColor:
		return "Color"
	default:
		return unknownStr
	}
}

// hinting returns the outline hinting used for the glyph mode.
// Binary glyphs are grid fitted; antialiased ones keep fractional advances.
func (m GlyphMode) hinting() Hinting {
	if m == GlyphBinary {
		return HintingFull
	}
	return HintingNone
}

// FontMode derives the glyph mode from an image mode and the embedded
// color flag. Modes without antialiasing ("1", "P", "I", "F") draw binary
// glyphs.
func FontMode(mode ImageMode, embeddedColor bool) GlyphMode {
	switch mode {
	case ModeBilevel, ModePalette, ModeInt32, ModeFloat32:
		return GlyphBinary
	}
	if embeddedColor {
		return GlyphColor
	}
	return GlyphGrayscale
}
