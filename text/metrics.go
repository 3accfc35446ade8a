package text

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the font size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// verticalAdvance is the pen advance per glyph of top-to-bottom text.
func (m Metrics) verticalAdvance() float64 {
	return m.Ascent + m.Descent
}
