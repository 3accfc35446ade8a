package text

import (
	"sync"

	"github.com/gogpu/imagetext"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs a pure Go implementation).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
//
// All sizes are in pixels per em. Y grows downwards: glyph bounds above
// the baseline have negative MinY.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph.
	GlyphAdvance(glyphIndex uint16, ppem float64, hinting Hinting) float64

	// GlyphBounds returns the ink bounding box for a glyph relative to
	// its pen position on the baseline.
	GlyphBounds(glyphIndex uint16, ppem float64, hinting Hinting) Rect

	// Kern returns the horizontal kerning adjustment between two glyphs.
	Kern(a, b uint16, ppem float64, hinting Hinting) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64, hinting Hinting) Metrics
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	imagetext.Logger().Debug("text: unknown font parser, using default",
		"parser", name, "default", defaultParserName)
	return parserRegistry[defaultParserName]
}
