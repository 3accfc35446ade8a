package text

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestLength(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"Hello", 25},
		{"Hello World!", 60},
		{"AV", 9}, // kerned
		{"VA", 10},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := newFixedText(t, tt.text).Length()
			if err != nil {
				t.Fatalf("Length failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLengthMultiline(t *testing.T) {
	txt := newFixedText(t, "Hello\nWorld")
	if _, err := txt.Length(); !errors.Is(err, ErrMultilineLength) {
		t.Errorf("Length() error = %v, want ErrMultilineLength", err)
	}

	b, err := NewBytes([]byte("Hello\nWorld"), WithFont(fixedFont(t, 10)))
	if err != nil {
		t.Fatalf("NewBytes failed: %v", err)
	}
	if _, err := b.Length(); !errors.Is(err, ErrMultilineLength) {
		t.Errorf("bytes Length() error = %v, want ErrMultilineLength", err)
	}
}

func TestLengthDisabledKerningIsAdditive(t *testing.T) {
	src := fixedFont(t, 10)
	rng := rand.New(rand.NewPCG(1, 2))

	randomASCII := func() string {
		b := make([]byte, 1+rng.IntN(8))
		for i := range b {
			b[i] = byte(' ' + rng.IntN('~'-' '+1))
		}
		return string(b)
	}
	length := func(s string, features ...string) float64 {
		txt, err := New(s, WithFont(src), WithFeatures(features...))
		if err != nil {
			t.Fatalf("New(%q) failed: %v", s, err)
		}
		l, err := txt.Length()
		if err != nil {
			t.Fatalf("Length(%q) failed: %v", s, err)
		}
		return l
	}

	for range 200 {
		a, b := randomASCII(), randomASCII()
		if sum, whole := length(a, "-kern")+length(b, "-kern"), length(a+b, "-kern"); sum != whole {
			t.Fatalf("len(%q)+len(%q) = %v, len of concatenation = %v", a, b, sum, whole)
		}
	}

	// With kerning the pair is tighter than its parts.
	if length("A")+length("V") == length("AV") {
		t.Error("kerning did not change the length of AV")
	}
}

func TestLengthGoRegularBinaryIsWholePixels(t *testing.T) {
	txt, err := New("Hello, World", WithFont(goRegular(t, 13)), WithMode(ModeBilevel), WithFeatures("-kern"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l, err := txt.Length()
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if l <= 0 || l != math.Trunc(l) {
		t.Errorf("Length() in mode 1 = %v, want a positive whole number", l)
	}
}

func TestBBoxAnchors(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   Rect
	}{
		{"la", Rect{MinX: 0, MinY: 3, MaxX: 25, MaxY: 10}},
		{"lt", Rect{MinX: 0, MinY: 0, MaxX: 25, MaxY: 7}},
		{"ls", Rect{MinX: 0, MinY: -7, MaxX: 25, MaxY: 0}},
		{"lb", Rect{MinX: 0, MinY: -7, MaxX: 25, MaxY: 0}},
		{"ld", Rect{MinX: 0, MinY: -9, MaxX: 25, MaxY: -2}},
		{"mm", Rect{MinX: -12.5, MinY: -3, MaxX: 12.5, MaxY: 4}},
		{"ra", Rect{MinX: -25, MinY: 3, MaxX: 0, MaxY: 10}},
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			got, err := newFixedText(t, "Hello").BBox(WithAnchor(tt.anchor))
			if err != nil {
				t.Fatalf("BBox failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("BBox(%s) = %+v, want %+v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestBBoxAt(t *testing.T) {
	got, err := newFixedText(t, "Hello").BBox(At(10, 20))
	if err != nil {
		t.Fatalf("BBox failed: %v", err)
	}
	want := Rect{MinX: 10, MinY: 23, MaxX: 35, MaxY: 30}
	if got != want {
		t.Errorf("BBox(At(10, 20)) = %+v, want %+v", got, want)
	}
}

func TestBBoxInvalidAnchor(t *testing.T) {
	tests := []struct {
		anchor  Anchor
		wantErr error
	}{
		{"l", ErrAnchorLength},
		{"lat", ErrAnchorLength},
		{"xa", ErrInvalidAnchor},
		{"lx", ErrInvalidAnchor},
		{"sa", ErrInvalidAnchor}, // "s" is for vertical text only
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			_, err := newFixedText(t, "Hello").BBox(WithAnchor(tt.anchor))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("BBox(%q) error = %v, want %v", tt.anchor, err, tt.wantErr)
			}
		})
	}
}

func TestBBoxMultiline(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		want  Rect
	}{
		{"left", AlignLeft, Rect{MinX: 0, MinY: 3, MaxX: 30, MaxY: 24}},
		{"center", AlignCenter, Rect{MinX: 0, MinY: 3, MaxX: 30, MaxY: 24}},
		{"right", AlignRight, Rect{MinX: 0, MinY: 3, MaxX: 30, MaxY: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newFixedText(t, "Hello\nWorld!").BBox(WithAlign(tt.align))
			if err != nil {
				t.Fatalf("BBox failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("BBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxTopToBottom(t *testing.T) {
	txt := newFixedText(t, "ab", WithDirection(DirectionTTB))

	// Glyphs are centered on x = 0 and advance by ascent + descent.
	l, err := txt.Length()
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if l != 24 {
		t.Errorf("vertical Length() = %v, want 24", l)
	}

	got, err := txt.BBox()
	if err != nil {
		t.Fatalf("BBox failed: %v", err)
	}
	want := Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 24}
	if got != want {
		t.Errorf("vertical BBox() = %+v, want %+v", got, want)
	}

	got, err = txt.BBox(WithAnchor("mm"))
	if err != nil {
		t.Fatalf("BBox(mm) failed: %v", err)
	}
	want = Rect{MinX: -2.5, MinY: -12, MaxX: 2.5, MaxY: 12}
	if got != want {
		t.Errorf("vertical BBox(mm) = %+v, want %+v", got, want)
	}

	if _, err := txt.BBox(WithAnchor("la")); !errors.Is(err, ErrInvalidAnchor) {
		t.Errorf("vertical BBox(la) error = %v, want ErrInvalidAnchor", err)
	}
}

func TestBBoxEmpty(t *testing.T) {
	got, err := newFixedText(t, "").BBox()
	if err != nil {
		t.Fatalf("BBox failed: %v", err)
	}
	if got != (Rect{}) {
		t.Errorf("BBox of empty text = %+v, want zero", got)
	}
}

func TestMeasurementCache(t *testing.T) {
	f := fixedFont(t, 10)
	txt, err := New("cached", WithFont(f))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for range 3 {
		if _, err := txt.Length(); err != nil {
			t.Fatalf("Length failed: %v", err)
		}
	}
	hits, misses := f.Source().CacheStats()
	if misses != 1 || hits != 2 {
		t.Errorf("CacheStats() = (%d, %d), want (2, 1)", hits, misses)
	}
}
