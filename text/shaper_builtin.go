package text

// BuiltinShaper maps runes to glyphs one to one using the parsed font's
// cmap, advances and kern table.
//
// It honors the "kern" feature (on by default) and top-to-bottom direction.
// Other OpenType features and the language are ignored; use GoTextShaper
// for ligatures, GPOS kerning and complex scripts.
type BuiltinShaper struct{}

// Shape implements Shaper.
func (s *BuiltinShaper) Shape(text string, f *OutlineFont, opts ShapeOptions) []ShapedGlyph {
	if text == "" || f == nil {
		return nil
	}
	parsed := f.Source().Parsed()
	if parsed == nil {
		return nil
	}

	size := f.Size()
	hinting := opts.Mode.hinting()
	vertical := opts.Direction.IsVertical()
	kern := !vertical && enabled(opts.Features, "kern", true)
	metrics := parsed.Metrics(size, hinting)
	vadv := metrics.verticalAdvance()

	result := make([]ShapedGlyph, 0, len(text))
	var pen float64
	var prev uint16
	cluster := 0
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, size, hinting)

		g := ShapedGlyph{GID: GlyphID(gid), Cluster: cluster, XAdvance: advance}
		if vertical {
			g.X = -advance / 2
			g.Y = pen + metrics.Ascent
			g.YAdvance = vadv
			pen += vadv
		} else {
			if kern && cluster > 0 {
				// Kerning adjusts the advance of the preceding glyph.
				k := parsed.Kern(prev, gid, size, hinting)
				result[len(result)-1].XAdvance += k
				pen += k
			}
			g.X = pen
			pen += advance
		}
		result = append(result, g)
		prev = gid
		cluster++
	}
	return result
}
