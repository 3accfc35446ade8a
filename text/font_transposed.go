package text

// Transpose is a rotation or flip applied to rendered text.
type Transpose int

// Orientations, named after the image transpose operations.
const (
	FlipLeftRight Transpose = iota
	FlipTopBottom
	Rotate90
	Rotate180
	Rotate270
	Transposed
	Transverse
)

// String returns the string representation of the orientation.
func (t Transpose) String() string {
	switch t {
	case FlipLeftRight:
		return "FlipLeftRight"
	case FlipTopBottom:
		return "FlipTopBottom"
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	case Transposed:
		return "Transpose"
	case Transverse:
		return "Transverse"
	default:
		return unknownStr
	}
}

// rotated reports whether the orientation swaps width and height.
func (t Transpose) rotated() bool {
	return t == Rotate90 || t == Rotate270
}

// TransposedFont wraps a font whose glyphs are rotated or flipped when
// drawn. Transposed fonts do not support wrapping.
type TransposedFont struct {
	font        Font
	orientation Transpose
}

// NewTransposedFont wraps f. If f is nil the default font is used.
func NewTransposedFont(f Font, orientation Transpose) *TransposedFont {
	if f == nil {
		f = DefaultFont()
	}
	return &TransposedFont{font: f, orientation: orientation}
}

// Kind implements Font.
func (f *TransposedFont) Kind() FontKind { return KindTransposed }

func (f *TransposedFont) private() {}

// Font returns the wrapped font.
func (f *TransposedFont) Font() Font { return f.font }

// Orientation returns the applied rotation or flip.
func (f *TransposedFont) Orientation() Transpose { return f.orientation }

// Length implements Font. It fails for text rotated by 90 or 270 degrees.
func (f *TransposedFont) Length(s string, opts ShapeOptions) (float64, error) {
	if f.orientation.rotated() {
		return 0, ErrRotatedLength
	}
	return f.font.Length(s, opts)
}

// BBox implements Font. Rotations by 90 or 270 degrees swap the axes.
func (f *TransposedFont) BBox(s string, opts ShapeOptions, anchor Anchor, stroke float64) (Rect, error) {
	r, err := f.font.BBox(s, opts, anchor, stroke)
	if err != nil {
		return Rect{}, err
	}
	if f.orientation.rotated() {
		return Rect{MinX: r.MinY, MinY: r.MinX, MaxX: r.MaxY, MaxY: r.MaxX}, nil
	}
	return r, nil
}
