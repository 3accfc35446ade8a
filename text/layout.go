package text

import "strings"

// Line is a positioned line of text.
//
// Draw each line at (X, Y) with its own Anchor. Justified lines are
// returned as one Line per word.
type Line struct {
	X, Y   float64
	Anchor Anchor
	Text   string
}

// split places lines (or the decoded payload split on line breaks) relative
// to the anchor point.
//
// Horizontal lines stack downwards by the line pitch and are aligned
// against the widest line. Top-to-bottom lines stack rightwards.
func (t *Text) split(m measurer, cfg splitConfig, lines []string) ([]Line, error) {
	anchor := cfg.anchor
	if anchor == "" {
		anchor = defaultAnchor(t.direction)
	} else if err := anchor.check(); err != nil {
		return nil, err
	}

	if lines == nil {
		lines = strings.Split(t.decoded(), "\n")
	}
	if len(lines) == 1 {
		return []Line{{X: cfg.x, Y: cfg.y, Anchor: anchor, Text: lines[0]}}, nil
	}

	if v := anchor.Vertical(); (v == 't' || v == 'b') && t.direction != DirectionTTB {
		return nil, ErrMultilineAnchor
	}

	pitch, err := m.linePitch()
	if err != nil {
		return nil, err
	}

	parts := make([]Line, 0, len(lines))
	top := cfg.y

	if t.direction == DirectionTTB {
		left := cfg.x
		for _, line := range lines {
			parts = append(parts, Line{X: left, Y: top, Anchor: anchor, Text: line})
			left += pitch
		}
		return parts, nil
	}

	widths := make([]float64, len(lines))
	var maxWidth float64
	for i, line := range lines {
		if widths[i], err = m.length(line); err != nil {
			return nil, err
		}
		maxWidth = max(maxWidth, widths[i])
	}

	switch anchor.Vertical() {
	case 'm':
		top -= float64(len(lines)-1) * pitch / 2
	case 'd':
		top -= float64(len(lines)-1) * pitch
	}

	for i, line := range lines {
		left := cfg.x
		diff := maxWidth - widths[i]

		switch cfg.align {
		case AlignLeft, AlignJustify:
		case AlignCenter:
			left += diff / 2
		case AlignRight:
			left += diff
		default:
			return nil, ErrAlign
		}

		if cfg.align == AlignJustify && diff != 0 && i != len(lines)-1 {
			if words := strings.Split(line, " "); len(words) > 1 {
				justified, err := justify(m, words, anchor, left, top, maxWidth)
				if err != nil {
					return nil, err
				}
				parts = append(parts, justified...)
				top += pitch
				continue
			}
		}

		switch anchor.Horizontal() {
		case 'm':
			left -= diff / 2
		case 'r':
			left -= diff
		}
		parts = append(parts, Line{X: left, Y: top, Anchor: anchor, Text: line})
		top += pitch
	}
	return parts, nil
}

// justify places each word of a line so the line spans maxWidth, spreading
// the remaining space evenly over the gaps. Words are left anchored.
func justify(m measurer, words []string, anchor Anchor, left, top, maxWidth float64) ([]Line, error) {
	switch anchor.Horizontal() {
	case 'm':
		left -= maxWidth / 2
	case 'r':
		left -= maxWidth
	}

	widths := make([]float64, len(words))
	var total float64
	for i, w := range words {
		var err error
		if widths[i], err = m.length(w); err != nil {
			return nil, err
		}
		total += widths[i]
	}

	gap := (maxWidth - total) / float64(len(words)-1)
	wordAnchor := Anchor("l" + string(anchor.Vertical()))
	parts := make([]Line, len(words))
	for i, w := range words {
		parts[i] = Line{X: left, Y: top, Anchor: wordAnchor, Text: w}
		left += widths[i] + gap
	}
	return parts, nil
}
