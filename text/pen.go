package text

// Pen is a line positioned at the pen origin of its first glyph: the
// baseline start for horizontal text, the top of the center line for
// top-to-bottom text. Text is always UTF-8.
type Pen struct {
	X, Y float64
	Text string
}

// originAnchor places the anchor point on the pen origin.
func originAnchor(d Direction) Anchor {
	if d == DirectionTTB {
		return "st"
	}
	return anchorBaseline
}

// Pens returns the lines of the text positioned at their pen origins,
// for drawing with a face that has no notion of anchors. Empty lines are
// omitted.
func (t *Text) Pens(opts ...SplitOption) ([]Pen, error) {
	m := t.measurer()
	lines, err := t.split(m, splitOptions(opts), nil)
	if err != nil {
		return nil, err
	}
	origin := originAnchor(t.direction)
	pens := make([]Pen, 0, len(lines))
	for _, l := range lines {
		if l.Text == "" {
			continue
		}
		at, err := m.bbox(l.Text, l.Anchor)
		if err != nil {
			return nil, err
		}
		ref, err := m.bbox(l.Text, origin)
		if err != nil {
			return nil, err
		}
		pens = append(pens, Pen{
			X:    l.X + at.MinX - ref.MinX,
			Y:    l.Y + at.MinY - ref.MinY,
			Text: l.Text,
		})
	}
	return pens, nil
}
