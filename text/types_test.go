package text

import (
	"errors"
	"testing"
)

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{DirectionTTB, "TTB"},
		{Direction(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", DirectionLTR, false},
		{"ltr", DirectionLTR, false},
		{"RTL", DirectionRTL, false},
		{"ttb", DirectionTTB, false},
		{"btt", DirectionLTR, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, error %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	for in, want := range map[string]Alignment{
		"left": AlignLeft, "Center": AlignCenter, "right": AlignRight, "justify": AlignJustify,
	} {
		got, err := ParseAlignment(in)
		if err != nil || got != want {
			t.Errorf("ParseAlignment(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAlignment("top"); !errors.Is(err, ErrAlign) {
		t.Errorf("ParseAlignment(top) error = %v, want ErrAlign", err)
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}

	if r.Width() != 3 || r.Height() != 4 {
		t.Errorf("Width, Height = %v, %v; want 3, 4", r.Width(), r.Height())
	}
	if got, want := r.Translate(1, -1), (Rect{MinX: 2, MinY: 1, MaxX: 5, MaxY: 5}); got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
	if got, want := r.Outset(1), (Rect{MinX: 0, MinY: 1, MaxX: 5, MaxY: 7}); got != want {
		t.Errorf("Outset = %+v, want %+v", got, want)
	}

	// A zero-width box still extends the union.
	line := Rect{MinX: 10, MinY: 0, MaxX: 10, MaxY: 0}
	if got, want := r.Union(line), (Rect{MinX: 1, MinY: 0, MaxX: 10, MaxY: 6}); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if !line.Empty() || r.Empty() {
		t.Error("Empty() misreports")
	}
}

func TestAnchorClasses(t *testing.T) {
	a := Anchor("md")
	if a.Horizontal() != 'm' || a.Vertical() != 'd' {
		t.Errorf("classes of md = %c, %c", a.Horizontal(), a.Vertical())
	}
	if Anchor("").Horizontal() != 0 || Anchor("l").Vertical() != 0 {
		t.Error("short anchors must report zero classes")
	}
	if defaultAnchor(DirectionTTB) != AnchorLeftTop || defaultAnchor(DirectionLTR) != AnchorLeftAscender {
		t.Error("unexpected default anchors")
	}
}
