package text

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFontKind(t *testing.T) {
	tests := []struct {
		font      Font
		kind      FontKind
		resizable bool
	}{
		{DefaultFont(), KindOutline, true},
		{BasicFont(), KindBitmap, false},
		{NewTransposedFont(DefaultFont(), Rotate180), KindTransposed, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.font.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.font.Kind().Resizable(); got != tt.resizable {
				t.Errorf("Resizable() = %v, want %v", got, tt.resizable)
			}
			if got := tt.font.Kind().SupportsFeatures(); got != tt.resizable {
				t.Errorf("SupportsFeatures() = %v, want %v", got, tt.resizable)
			}
		})
	}
}

func TestOutlineFontVariant(t *testing.T) {
	f := fixedFont(t, 10)
	v := f.Variant(20)

	if v.Size() != 20 || f.Size() != 10 {
		t.Errorf("Variant changed sizes: original %v, variant %v", f.Size(), v.Size())
	}
	if v.Source() != f.Source() {
		t.Error("Variant must share the font source")
	}

	l, err := v.Length("ab", ShapeOptions{})
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if l != 20 {
		t.Errorf("Length at size 20 = %v, want 20", l)
	}
}

func TestBitmapFont(t *testing.T) {
	f := BasicFont()

	l, err := f.Length("Hello", ShapeOptions{})
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if l != 35 {
		t.Errorf("Length(Hello) = %v, want 35 (7 pixels per glyph)", l)
	}

	box, err := f.BBox("Hello", ShapeOptions{}, AnchorLeftAscender, 5)
	if err != nil {
		t.Fatalf("BBox failed: %v", err)
	}
	if box.MinX != 0 || box.MaxX != 35 {
		t.Errorf("BBox x range = [%v, %v], want [0, 35]", box.MinX, box.MaxX)
	}
	if box.MinY < 0 || box.MaxY > 13 {
		t.Errorf("BBox y range = [%v, %v], want within the 13 pixel cell", box.MinY, box.MaxY)
	}

	if _, err := f.BBox("Hello", ShapeOptions{}, "q", 0); !errors.Is(err, ErrAnchorLength) {
		t.Errorf("BBox(q) error = %v, want ErrAnchorLength", err)
	}
}

func TestTransposedFont(t *testing.T) {
	inner := fixedFont(t, 10)

	tests := []struct {
		orientation Transpose
		wantBox     Rect
		wantErr     error
	}{
		{Rotate180, Rect{MinX: 0, MinY: 3, MaxX: 25, MaxY: 10}, nil},
		{FlipLeftRight, Rect{MinX: 0, MinY: 3, MaxX: 25, MaxY: 10}, nil},
		{Rotate90, Rect{MinX: 3, MinY: 0, MaxX: 10, MaxY: 25}, ErrRotatedLength},
		{Rotate270, Rect{MinX: 3, MinY: 0, MaxX: 10, MaxY: 25}, ErrRotatedLength},
	}

	for _, tt := range tests {
		t.Run(tt.orientation.String(), func(t *testing.T) {
			f := NewTransposedFont(inner, tt.orientation)

			box, err := f.BBox("Hello", ShapeOptions{}, AnchorLeftAscender, 0)
			if err != nil {
				t.Fatalf("BBox failed: %v", err)
			}
			if box != tt.wantBox {
				t.Errorf("BBox() = %+v, want %+v", box, tt.wantBox)
			}

			l, err := f.Length("Hello", ShapeOptions{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Length() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && l != 25 {
				t.Errorf("Length() = %v, want 25", l)
			}
		})
	}
}

func TestTransposedTextLength(t *testing.T) {
	txt, err := New("Hello", WithFont(NewTransposedFont(fixedFont(t, 10), Rotate90)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := txt.Length(); !errors.Is(err, ErrRotatedLength) {
		t.Errorf("Length() error = %v, want ErrRotatedLength", err)
	}
}

func TestGoRegularMetrics(t *testing.T) {
	f := goRegular(t, 16)
	m := f.Metrics(GlyphGrayscale)

	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v, smaller than ascent + descent", m.LineHeight())
	}

	// "A" sits on the baseline: with the default anchor its bottom is the ascent.
	box, err := f.BBox("A", ShapeOptions{}, AnchorLeftAscender, 0)
	if err != nil {
		t.Fatalf("BBox failed: %v", err)
	}
	if math.Abs(box.MaxY-m.Ascent) > 0.5 {
		t.Errorf("BBox(A).MaxY = %v, want about the ascent %v", box.MaxY, m.Ascent)
	}
	if box.MinY <= 0 {
		t.Errorf("BBox(A).MinY = %v, want below the ascender line", box.MinY)
	}
}

func TestGoTextShaperBasicLatin(t *testing.T) {
	f := goRegular(t, 16)
	shaper := NewGoTextShaper()

	result := shaper.Shape("Hello", f, ShapeOptions{})
	if len(result) != 5 {
		t.Fatalf("Shape(\"Hello\"): got %d glyphs, want 5", len(result))
	}

	var prevX float64
	for i, g := range result {
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d: XAdvance=%f, want > 0", i, g.XAdvance)
		}
		if i > 0 && g.X <= prevX {
			t.Errorf("glyph %d: X=%f should be > previous X=%f", i, g.X, prevX)
		}
		prevX = g.X
	}
}

func TestGoTextShaperMatchesBuiltin(t *testing.T) {
	f := goRegular(t, 16)
	opts := ShapeOptions{Features: []Feature{{Tag: "kern", Value: 0}}, Language: "en"}

	builtin := runAdvance((&BuiltinShaper{}).Shape("minimum", f, opts), false)
	gotext := runAdvance(NewGoTextShaper().Shape("minimum", f, opts), false)
	if math.Abs(builtin-gotext) > 1 {
		t.Errorf("advance: builtin %v, go-text %v", builtin, gotext)
	}
}

func TestGoTextShaperFallsBackForUnparsedFonts(t *testing.T) {
	useShaper(t, NewGoTextShaper())

	l, err := newFixedText(t, "Hello").Length()
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if l != 25 {
		t.Errorf("Length() = %v, want 25 from the builtin fallback", l)
	}
}

func TestSetShaperInvalidatesCache(t *testing.T) {
	f := fixedFont(t, 10)
	opts := ShapeOptions{}

	if _, err := f.Length("Hello", opts); err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	useShaper(t, stubShaper{})
	l, err := f.Length("Hello", opts)
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if l != 1 {
		t.Errorf("Length() after SetShaper = %v, want 1 from the new shaper", l)
	}
}

// stubShaper shapes every text as a single glyph one pixel wide.
type stubShaper struct{}

func (stubShaper) Shape(string, *OutlineFont, ShapeOptions) []ShapedGlyph {
	return []ShapedGlyph{{XAdvance: 1}}
}

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go")
	}
	if len(source.Data()) != len(goregular.TTF) {
		t.Error("Data() differs from the loaded font")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded")
	}
	if _, err := NewFontSourceFromFile("testdata/does-not-exist.ttf"); err == nil {
		t.Error("NewFontSourceFromFile(missing) succeeded")
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for copied FontSource")
		}
	}()
	copied := *source //nolint:govet // copying is what is tested
	copied.Name()
}

func TestDrawFace(t *testing.T) {
	face, err := DrawFace(goRegular(t, 12), GlyphGrayscale)
	if err != nil {
		t.Fatalf("DrawFace(outline) failed: %v", err)
	}
	if face.Metrics().Ascent <= 0 {
		t.Error("outline face has no ascent")
	}
	_ = face.Close()

	if _, err := DrawFace(BasicFont(), GlyphBinary); err != nil {
		t.Errorf("DrawFace(bitmap) failed: %v", err)
	}
	if _, err := DrawFace(fixedFont(t, 10), GlyphBinary); !errors.Is(err, ErrNoDrawFace) {
		t.Errorf("DrawFace(fixed) error = %v, want ErrNoDrawFace", err)
	}
	if _, err := DrawFace(NewTransposedFont(nil, Rotate90), GlyphBinary); !errors.Is(err, ErrNoDrawFace) {
		t.Errorf("DrawFace(transposed) error = %v, want ErrNoDrawFace", err)
	}
}
