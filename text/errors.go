package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrAnchorLength is returned when an anchor is not two characters long.
	ErrAnchorLength = errors.New("text: anchor must be a 2 character string")

	// ErrInvalidAnchor is returned when an anchor class is not valid for the
	// text direction.
	ErrInvalidAnchor = errors.New("text: invalid anchor")

	// ErrMultilineAnchor is returned when a top or bottom anchor is used
	// with multiline horizontal text.
	ErrMultilineAnchor = errors.New("text: anchor not supported for multiline text")

	// ErrAlign is returned for an unknown alignment.
	ErrAlign = errors.New(`text: align must be "left", "center", "right" or "justify"`)

	// ErrMultilineLength is returned when measuring the length of multiline text.
	ErrMultilineLength = errors.New("text: can't measure length of multiline text")

	// ErrEmbeddedColorMode is returned by EmbedColor outside RGB and RGBA modes.
	ErrEmbeddedColorMode = errors.New("text: embedded color supported only in RGB and RGBA modes")

	// ErrWrapFont is returned when wrapping with a font that is not an outline font.
	ErrWrapFont = errors.New("text: only outline fonts supported")

	// ErrWrapDirection is returned when wrapping text that is not left-to-right.
	ErrWrapDirection = errors.New("text: only ltr direction supported")

	// ErrScalingFont is returned when scaling is requested for a font that
	// cannot be resized.
	ErrScalingFont = errors.New("text: 'scaling' only supports outline fonts")

	// ErrScalingHeight is returned when scaling is requested without a height.
	ErrScalingHeight = errors.New("text: 'scaling' requires 'height'")

	// ErrNotScaled is returned when no font size within the limit fits.
	ErrNotScaled = errors.New("text: text could not be scaled")

	// ErrScalingMode is returned for an unknown scaling mode.
	ErrScalingMode = errors.New(`text: scaling must be "shrink" or "grow"`)

	// ErrRotatedLength is returned when measuring the length of text
	// rotated by 90 or 270 degrees.
	ErrRotatedLength = errors.New("text: text length is undefined for text rotated by 90 or 270 degrees")

	// ErrInvalidLanguage is returned for a language tag that is not BCP 47.
	ErrInvalidLanguage = errors.New("text: invalid language tag")

	// ErrInvalidFeature is returned for a malformed OpenType feature string.
	ErrInvalidFeature = errors.New("text: invalid font feature")

	// ErrBytesPayload is returned when a byte payload cannot be encoded.
	ErrBytesPayload = errors.New("text: payload not representable as bytes")
)

// ParseError is returned when a keyword cannot be parsed.
type ParseError struct {
	What  string
	Value string
}

func (e *ParseError) Error() string {
	return "text: unknown " + e.What + " " + `"` + e.Value + `"`
}
