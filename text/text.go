package text

import (
	"image/color"
	"strings"
)

// Text is a run of text together with the styling that affects its layout.
//
// The payload is either a Unicode string (New) or a byte string measured
// as ISO-8859-1 (NewBytes); Wrap preserves the kind. Text values are not
// safe for concurrent mutation, but distinct values share nothing mutable
// and fonts may be shared freely.
type Text struct {
	payload string
	binary  bool

	font      Font
	mode      ImageMode
	spacing   float64
	direction Direction
	features  []Feature
	language  string

	embeddedColor bool
	strokeWidth   float64
	strokeFill    color.Color
}

// New creates a Text from a Unicode string.
//
// Without WithFont the text uses DefaultFont. Feature strings and the
// language tag are validated here.
func New(s string, opts ...TextOption) (*Text, error) {
	return newText(s, false, opts)
}

// NewBytes creates a Text from a byte string. Bytes are measured as
// ISO-8859-1 and only ASCII whitespace separates words.
func NewBytes(b []byte, opts ...TextOption) (*Text, error) {
	return newText(string(b), true, opts)
}

func newText(payload string, binary bool, opts []TextOption) (*Text, error) {
	cfg := defaultTextConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	features, err := ParseFeatures(cfg.features...)
	if err != nil {
		return nil, err
	}
	lang, err := canonicalLanguage(cfg.language)
	if err != nil {
		return nil, err
	}
	if cfg.font == nil {
		cfg.font = DefaultFont()
	}
	return &Text{
		payload:   payload,
		binary:    binary,
		font:      cfg.font,
		mode:      cfg.mode,
		spacing:   cfg.spacing,
		direction: cfg.direction,
		features:  features,
		language:  lang,
	}, nil
}

// String returns the payload. Byte payloads are returned unconverted.
func (t *Text) String() string { return t.payload }

// Bytes returns a copy of the payload bytes.
func (t *Text) Bytes() []byte { return []byte(t.payload) }

// IsBytes reports whether the payload is a byte string.
func (t *Text) IsBytes() bool { return t.binary }

// Font returns the font the text is measured with.
func (t *Text) Font() Font { return t.font }

// Mode returns the image mode the text will be drawn into.
func (t *Text) Mode() ImageMode { return t.mode }

// Spacing returns the number of pixels between lines.
func (t *Text) Spacing() float64 { return t.spacing }

// Direction returns the text direction.
func (t *Text) Direction() Direction { return t.direction }

// Features returns the OpenType feature toggles.
func (t *Text) Features() []Feature { return append([]Feature(nil), t.features...) }

// Language returns the canonical language tag, or "".
func (t *Text) Language() string { return t.language }

// EmbeddedColor reports whether color glyphs are used.
func (t *Text) EmbeddedColor() bool { return t.embeddedColor }

// StrokeWidth returns the outline width in pixels.
func (t *Text) StrokeWidth() float64 { return t.strokeWidth }

// StrokeFill returns the outline color, or nil to use the fill color.
func (t *Text) StrokeFill() color.Color { return t.strokeFill }

// GlyphMode returns the glyph mode derived from the image mode and the
// embedded color flag.
func (t *Text) GlyphMode() GlyphMode {
	return FontMode(t.mode, t.embeddedColor)
}

// EmbedColor draws embedded color glyphs (COLR, CBDT, SBIX).
// It fails unless the image mode is RGB or RGBA.
func (t *Text) EmbedColor() error {
	if !t.mode.supportsEmbeddedColor() {
		return ErrEmbeddedColorMode
	}
	t.embeddedColor = true
	return nil
}

// Stroke sets the outline width and color. A nil fill draws the outline
// in the fill color.
func (t *Text) Stroke(width float64, fill color.Color) {
	t.strokeWidth = width
	t.strokeFill = fill
}

// Multiline reports whether the payload contains a line break.
func (t *Text) Multiline() bool {
	return strings.Contains(t.payload, "\n")
}

// sibling returns a Text holding payload with the same styling as t.
func (t *Text) sibling(payload string) *Text {
	s := *t
	s.payload = payload
	s.features = append([]Feature(nil), t.features...)
	return &s
}

// WithFont returns a copy of t drawn with f. The payload and styling are
// shared; the receiver is unchanged.
func (t *Text) WithFont(f Font) *Text {
	s := t.sibling(t.payload)
	if f != nil {
		s.font = f
	}
	return s
}
