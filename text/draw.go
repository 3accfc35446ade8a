package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// ErrNoDrawFace is returned by DrawFace for fonts that cannot be drawn
// with golang.org/x/image/font.
var ErrNoDrawFace = errors.New("text: font has no drawable face")

// DrawFace returns an x/image face for drawing f with the hinting of the
// glyph mode. The caller must Close the face.
//
// Only outline fonts parsed by the default "ximage" parser and bitmap
// fonts can be drawn.
func DrawFace(f Font, mode GlyphMode) (font.Face, error) {
	switch f := f.(type) {
	case *BitmapFont:
		return nopCloseFace{f.face}, nil
	case *OutlineFont:
		xparsed, ok := f.source.Parsed().(*ximageParsedFont)
		if !ok {
			return nil, fmt.Errorf("%w: parser of %q", ErrNoDrawFace, f.source.Name())
		}
		face, err := opentype.NewFace(xparsed.font, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72, // size is in pixels
			Hinting: mapHinting(mode.hinting()),
		})
		if err != nil {
			return nil, fmt.Errorf("text: failed to create face: %w", err)
		}
		return face, nil
	default:
		return nil, fmt.Errorf("%w: %s font", ErrNoDrawFace, f.Kind())
	}
}

// nopCloseFace keeps shared bitmap faces open.
type nopCloseFace struct {
	font.Face
}

func (nopCloseFace) Close() error { return nil }
