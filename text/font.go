package text

// Font is a font variant that can measure text.
//
// The set of variants is closed: *OutlineFont, *BitmapFont and
// *TransposedFont. Use Kind to query what a font supports.
type Font interface {
	// Kind reports the variant of the font.
	Kind() FontKind

	// Length returns the advance of a single line of text in pixels.
	// For top-to-bottom text this is the vertical advance.
	Length(s string, opts ShapeOptions) (float64, error)

	// BBox returns the bounding box of a single line of text in pixels,
	// relative to the anchor. stroke grows the box on every side.
	BBox(s string, opts ShapeOptions, anchor Anchor, stroke float64) (Rect, error)

	// private prevents external implementation
	private()
}

// ShapeOptions controls how a font lays out a run of text.
type ShapeOptions struct {
	// Mode selects hinting: binary glyphs are measured grid fitted.
	Mode GlyphMode
	// Direction of the run.
	Direction Direction
	// Features are OpenType feature toggles, applied in order.
	Features []Feature
	// Language is a canonical BCP 47 tag, or empty.
	Language string
}

// FontKind identifies a font variant.
type FontKind int

const (
	// KindBitmap is a fixed-size bitmap font.
	KindBitmap FontKind = iota
	// KindOutline is a scalable outline font.
	KindOutline
	// KindTransposed is a font wrapped in a rotation or flip.
	KindTransposed
)

// String returns the string representation of the kind.
func (k FontKind) String() string {
	switch k {
	case KindBitmap:
		return "Bitmap"
	case KindOutline:
		return "Outline"
	case KindTransposed:
		return "Transposed"
	default:
		return unknownStr
	}
}

// Resizable reports whether fonts of this kind support arbitrary sizes
// and dynamic layout (wrapping and scaling).
func (k FontKind) Resizable() bool {
	return k == KindOutline
}

// SupportsFeatures reports whether fonts of this kind honor direction,
// OpenType features and language.
func (k FontKind) SupportsFeatures() bool {
	return k == KindOutline
}
