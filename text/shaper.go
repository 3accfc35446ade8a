package text

import (
	"sync"
	"sync/atomic"
)

// Shaper converts text into positioned glyphs.
// Implementations must be safe for concurrent use.
//
// The default shaper is BuiltinShaper. Use SetShaper to install
// NewGoTextShaper for OpenType feature and complex script support.
type Shaper interface {
	// Shape lays out text with the given outline font.
	Shape(text string, f *OutlineFont, opts ShapeOptions) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}

	// shaperGen changes whenever the global shaper is replaced, so cached
	// runs from a previous shaper are not reused.
	shaperGen atomic.Uint64
)

// SetShaper sets the global shaper used by outline fonts.
// Passing nil restores the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
	shaperGen.Add(1)
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape shapes text using the global shaper.
func Shape(text string, f *OutlineFont, opts ShapeOptions) []ShapedGlyph {
	return GetShaper().Shape(text, f, opts)
}
