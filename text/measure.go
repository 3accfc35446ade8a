package text

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// measurer measures decoded lines of a Text.
type measurer struct {
	font    Font
	opts    ShapeOptions
	stroke  float64
	spacing float64
	binary  bool
}

func (t *Text) measurer() measurer {
	return measurer{
		font: t.font,
		opts: ShapeOptions{
			Mode:      t.GlyphMode(),
			Direction: t.direction,
			Features:  t.features,
			Language:  t.language,
		},
		stroke:  t.strokeWidth,
		spacing: t.spacing,
		binary:  t.binary,
	}
}

// withFont returns a copy measuring with f.
func (m measurer) withFont(f Font) measurer {
	m.font = f
	return m
}

// length returns the advance of a single line.
func (m measurer) length(s string) (float64, error) {
	return m.font.Length(s, m.opts)
}

// bbox returns the box of a single line relative to anchor.
func (m measurer) bbox(s string, anchor Anchor) (Rect, error) {
	return m.font.BBox(s, m.opts, anchor, m.stroke)
}

// width is the right edge of a single line anchored at "la".
func (m measurer) width(s string) (float64, error) {
	r, err := m.bbox(s, AnchorLeftAscender)
	return r.MaxX, err
}

// linePitch is the distance between successive lines: the bottom of "A"
// anchored at "la" plus the stroke width plus the line spacing.
func (m measurer) linePitch() (float64, error) {
	opts := m.opts
	opts.Direction = DirectionLTR
	r, err := m.font.BBox("A", opts, AnchorLeftAscender, m.stroke)
	if err != nil {
		return 0, err
	}
	return r.MaxY + m.stroke + m.spacing, nil
}

// isSpace classifies whitespace: Unicode white space for strings, ASCII
// white space for byte payloads.
func (m measurer) isSpace(r rune) bool {
	if m.binary {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	}
	return unicode.IsSpace(r)
}

func (m measurer) trimLeft(s string) string {
	return strings.TrimLeftFunc(s, m.isSpace)
}

func (m measurer) trimRight(s string) string {
	return strings.TrimRightFunc(s, m.isSpace)
}

func (m measurer) allSpace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !m.isSpace(r) }) < 0
}

// decoded returns the payload as UTF-8. Byte payloads are ISO-8859-1.
func (t *Text) decoded() string {
	if !t.binary {
		return t.payload
	}
	// Every byte is a valid ISO-8859-1 code point; decoding cannot fail.
	s, _ := charmap.ISO8859_1.NewDecoder().String(t.payload)
	return s
}

// encode converts decoded text back to the payload representation.
func (t *Text) encode(s string) (string, error) {
	if !t.binary {
		return s, nil
	}
	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBytesPayload, err)
	}
	return b, nil
}

// Length returns the advance of single-line text in pixels, with 1/64
// pixel precision. This is the offset at which following text should
// be drawn; the bounding box may extend past it for italics or accents.
//
// For top-to-bottom text the vertical advance is returned.
//
// The sum of the lengths of two strings may differ from the length of
// their concatenation because of kerning. Measure with the "-kern"
// feature, or include the following character and subtract its length,
// when that matters.
func (t *Text) Length() (float64, error) {
	if t.Multiline() {
		return 0, ErrMultilineLength
	}
	return t.measurer().length(t.decoded())
}

// BBox returns the bounding box of the text as drawn at the anchor point.
// Multiline text is placed line by line as Lines does.
func (t *Text) BBox(opts ...SplitOption) (Rect, error) {
	m := t.measurer()
	lines, err := t.split(m, splitOptions(opts), nil)
	if err != nil {
		return Rect{}, err
	}
	var box Rect
	for i, l := range lines {
		r, err := m.bbox(l.Text, l.Anchor)
		if err != nil {
			return Rect{}, err
		}
		r = r.Translate(l.X, l.Y)
		if i == 0 {
			box = r
			continue
		}
		box = box.Union(r)
	}
	return box, nil
}

// Lines returns the positioned lines of the text, ready to be drawn one
// by one with their own anchor. Line text has the payload's encoding.
func (t *Text) Lines(opts ...SplitOption) ([]Line, error) {
	lines, err := t.split(t.measurer(), splitOptions(opts), nil)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].Text, err = t.encode(lines[i].Text); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func splitOptions(opts []SplitOption) splitConfig {
	var cfg splitConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
