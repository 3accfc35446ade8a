package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,               // Default cache limit
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithCacheLimit sets the maximum number of cached shaped runs.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// TextOption configures a Text value.
type TextOption func(*textConfig)

// textConfig holds the styling of a Text value.
type textConfig struct {
	font      Font
	mode      ImageMode
	spacing   float64
	direction Direction
	features  []string
	language  string
}

// defaultTextConfig returns the defaults: RGB mode, 4 pixels between
// lines, left-to-right, the default font.
func defaultTextConfig() textConfig {
	return textConfig{
		mode:      ModeRGB,
		spacing:   4,
		direction: DirectionLTR,
	}
}

// WithFont sets the font. The default is DefaultFont().
func WithFont(f Font) TextOption {
	return func(c *textConfig) {
		c.font = f
	}
}

// WithMode sets the image mode the text will be drawn into.
func WithMode(m ImageMode) TextOption {
	return func(c *textConfig) {
		c.mode = m
	}
}

// WithSpacing sets the number of pixels between lines.
func WithSpacing(px float64) TextOption {
	return func(c *textConfig) {
		c.spacing = px
	}
}

// WithDirection sets the text direction.
func WithDirection(d Direction) TextOption {
	return func(c *textConfig) {
		c.direction = d
	}
}

// WithFeatures sets OpenType feature toggles such as "-kern" or "ss01".
func WithFeatures(features ...string) TextOption {
	return func(c *textConfig) {
		c.features = append([]string(nil), features...)
	}
}

// WithLanguage sets the BCP 47 language tag of the text (e.g., "en", "ja").
func WithLanguage(tag string) TextOption {
	return func(c *textConfig) {
		c.language = tag
	}
}

// WrapOption configures Text.Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	height    float64
	hasHeight bool
	scaling   *Scaling
}

// WithHeight bounds the wrapped text to h pixels. Lines that would end
// below h are left in the remainder.
func WithHeight(h float64) WrapOption {
	return func(c *wrapConfig) {
		c.height = h
		c.hasHeight = true
	}
}

// WithScaling resizes the font until the text fits. Requires WithHeight.
func WithScaling(s Scaling) WrapOption {
	return func(c *wrapConfig) {
		c.scaling = &s
	}
}

// SplitOption configures line placement for Text.Lines and Text.BBox.
type SplitOption func(*splitConfig)

type splitConfig struct {
	x, y   float64
	anchor Anchor
	align  Alignment
}

// At sets the anchor point. The default is (0, 0).
func At(x, y float64) SplitOption {
	return func(c *splitConfig) {
		c.x, c.y = x, y
	}
}

// WithAnchor sets the two character anchor code.
// The default is "la", or "lt" for top-to-bottom text.
func WithAnchor(a Anchor) SplitOption {
	return func(c *splitConfig) {
		c.anchor = a
	}
}

// WithAlign sets the relative alignment of multiline text.
func WithAlign(a Alignment) SplitOption {
	return func(c *splitConfig) {
		c.align = a
	}
}
