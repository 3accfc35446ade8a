package text

import (
	"bytes"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/imagetext"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - GPOS kerning, which "-kern" turns off
//   - Stylistic sets and alternates ("ss01", "aalt=2")
//   - Language specific forms
//
// GoTextShaper is an opt-in replacement for BuiltinShaper. To use it:
//
//	shaper := text.NewGoTextShaper()
//	text.SetShaper(shaper)
//	defer text.SetShaper(nil) // Reset to default BuiltinShaper
//
// Fonts that go-text cannot parse are shaped with BuiltinShaper.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape() call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	// A nil entry records a font go-text failed to parse.
	fontCache map[*FontSource]*font.Font

	fallback BuiltinShaper
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, f *OutlineFont, opts ShapeOptions) []ShapedGlyph {
	if text == "" || f == nil {
		return nil
	}
	source := f.Source()

	goTextFont := s.getOrCreateFont(source)
	if goTextFont == nil {
		return s.fallback.Shape(text, f, opts)
	}

	// font.Face is not safe for concurrent use, so each call gets its own.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	dir := mapDirection(opts.Direction)
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    dir,
		Face:         goTextFace,
		FontFeatures: mapFeatures(opts.Features),
		Size:         floatToFixed(f.Size()),
		Script:       detectScript(runes),
		Language:     language.NewLanguage(lang),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs, f, opts)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) *font.Font {
	s.mu.RLock()
	f, ok := s.fontCache[source]
	s.mu.RUnlock()
	if ok {
		return f
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		imagetext.Logger().Debug("text: go-text cannot parse font, using builtin shaper",
			"font", source.Name(), "err", err)
		s.fontCache[source] = nil
		return nil
	}
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
// This is useful when a FontSource is closed.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	default:
		return di.DirectionLTR
	}
}

// mapFeatures converts feature toggles to go-text font features.
// Tags are validated by ParseFeature.
func mapFeatures(features []Feature) []shaping.FontFeature {
	if len(features) == 0 {
		return nil
	}
	out := make([]shaping.FontFeature, len(features))
	for i, f := range features {
		out[i] = shaping.FontFeature{Tag: ot.MustNewTag(f.Tag), Value: f.Value}
	}
	return out
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script runs are shaped with that script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text/typesetting output glyphs to our
// ShapedGlyph slice. Binary glyph modes round advances to whole pixels.
// Vertical runs are placed with the font's own vertical metrics so both
// shapers agree on the center line.
func convertGlyphs(glyphs []shaping.Glyph, f *OutlineFont, opts ShapeOptions) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	hinted := opts.Mode.hinting() == HintingFull
	round := func(v float64) float64 {
		if hinted {
			return math.Round(v)
		}
		return v
	}

	vertical := opts.Direction.IsVertical()
	var metrics Metrics
	if vertical {
		metrics = f.Metrics(opts.Mode)
	}
	parsed := f.Source().Parsed()

	result := make([]ShapedGlyph, len(glyphs))
	var pen float64
	for i, g := range glyphs {
		gid := GlyphID(uint16(g.GlyphID)) //nolint:gosec // glyph IDs of sfnt fonts fit in uint16
		result[i] = ShapedGlyph{GID: gid, Cluster: g.TextIndex()}

		if vertical {
			hadv := parsed.GlyphAdvance(uint16(gid), f.Size(), opts.Mode.hinting())
			vadv := round(math.Abs(fixedToFloat64(g.Advance)))
			result[i].X = -hadv / 2
			result[i].Y = pen + metrics.Ascent
			result[i].XAdvance = hadv
			result[i].YAdvance = vadv
			pen += vadv
			continue
		}

		adv := round(fixedToFloat64(g.Advance))
		result[i].X = pen + fixedToFloat64(g.XOffset)
		result[i].Y = -fixedToFloat64(g.YOffset)
		result[i].XAdvance = adv
		pen += adv
	}
	return result
}
