// Package text measures and lays out text for drawing into images.
//
// The package is organized around a few types:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Font: A font variant that can measure text. OutlineFont is a
//     FontSource at a given size; BitmapFont and TransposedFont are the
//     fixed-size and rotated variants.
//   - Text: A run of text with its styling (font, image mode, line spacing,
//     direction, OpenType features, language, stroke).
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//   - Shaper: Pluggable shaping backend (default: BuiltinShaper)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	t, err := text.New("The quick brown fox", text.WithFont(source.Font(24)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fit the text into a 200x80 box, shrinking the font if needed.
//	if _, err := t.Wrap(200, text.WithHeight(80), text.WithScaling(text.Shrink())); err != nil {
//	    log.Fatal(err)
//	}
//	lines, err := t.Lines(text.At(10, 10), text.WithAlign(text.AlignCenter))
//
// # Coordinates
//
// All measurements are in pixels with Y growing downwards. Bounding boxes
// are relative to an anchor, a two character code whose first character
// selects the horizontal reference (left, middle, right) and whose second
// selects the vertical one (ascender, top, middle, baseline, bottom,
// descender). The default anchor "la" places the left end of the ascender
// line at the anchor point.
//
// # Drawing
//
// Lines returns each line with its own anchor. Pens returns the same lines
// positioned at the pen origin of their first glyph, which is what an
// x/image font.Drawer with a face from DrawFace expects.
//
// # Shaping
//
// BuiltinShaper maps runes to glyphs one to one and applies the kern table.
// For ligatures, GPOS kerning, OpenType features and complex scripts use
// GoTextShaper, backed by go-text/typesetting:
//
//	text.SetShaper(text.NewGoTextShaper())
package text
