package text

import (
	"strings"
	"unicode/utf8"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	default:
		return unknownStr
	}
}

// IsHorizontal returns true if the direction is horizontal (LTR or RTL).
func (d Direction) IsHorizontal() bool {
	return d == DirectionLTR || d == DirectionRTL
}

// IsVertical returns true if the direction is vertical (TTB).
func (d Direction) IsVertical() bool {
	return d == DirectionTTB
}

// ParseDirection parses "ltr", "rtl" or "ttb" (case-insensitive).
// The empty string selects DirectionLTR.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "ltr":
		return DirectionLTR, nil
	case "rtl":
		return DirectionRTL, nil
	case "ttb":
		return DirectionTTB, nil
	default:
		return DirectionLTR, &ParseError{What: "direction", Value: s}
	}
}

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Rect represents a rectangle for glyph and text bounds.
// Y grows downwards.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Union returns the smallest rectangle containing both r and o.
// Unlike image.Rectangle.Union, empty rectangles are not ignored: a
// zero-width line still contributes its position.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Outset grows r by d on every side.
func (r Rect) Outset(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Alignment specifies the relative alignment of the lines of multiline text.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
	// AlignJustify stretches every line but the last to the widest line
	// by widening the gaps between words.
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// ParseAlignment parses "left", "center", "right" or "justify".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	default:
		return AlignLeft, ErrAlign
	}
}

// Anchor is a two character code selecting the reference point of text.
// The first character is the horizontal class (l, m, r, s), the second
// the vertical class (a, t, m, s, b, d).
//
// Horizontal: l left, m middle, r right of the advance. Vertical: a
// ascender line, t top of the ink, m halfway between ascender and
// descender, s baseline, b bottom of the ink, d descender line. Top to
// bottom text uses l, m, s, r across the column and t, m, b along it.
type Anchor string

// Default anchors.
const (
	// AnchorLeftAscender is the default anchor of horizontal text.
	AnchorLeftAscender Anchor = "la"
	// AnchorLeftTop is the default anchor of top-to-bottom text.
	AnchorLeftTop Anchor = "lt"
	// anchorBaseline places the origin on the pen position of the first glyph.
	anchorBaseline Anchor = "ls"
)

// defaultAnchor returns the anchor used when none is given.
func defaultAnchor(d Direction) Anchor {
	if d == DirectionTTB {
		return AnchorLeftTop
	}
	return AnchorLeftAscender
}

// check reports ErrAnchorLength unless a is exactly two characters.
func (a Anchor) check() error {
	if utf8.RuneCountInString(string(a)) != 2 {
		return ErrAnchorLength
	}
	return nil
}

// Horizontal returns the horizontal class byte.
func (a Anchor) Horizontal() byte {
	if len(a) < 1 {
		return 0
	}
	return a[0]
}

// Vertical returns the vertical class byte.
func (a Anchor) Vertical() byte {
	if len(a) < 2 {
		return 0
	}
	return a[1]
}
