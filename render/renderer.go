// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/imagetext/text"
)

// Errors returned by renderers.
var (
	// ErrEmptyOutput is returned when the text covers no pixels.
	ErrEmptyOutput = errors.New("render: text has an empty bounding box")

	// ErrUnsupportedFont is returned for fonts a renderer cannot draw.
	ErrUnsupportedFont = errors.New("render: unsupported font")

	// ErrUnknownFormat is returned by ForFormat.
	ErrUnknownFormat = errors.New("render: unknown output format")
)

// Renderer writes a Text to an encoded output.
//
// Renderers are stateless; the same renderer may be used concurrently
// for different texts.
type Renderer interface {
	// Render draws t and writes the encoded result to w.
	Render(w io.Writer, t *text.Text, opts ...Option) error

	// Format returns the output format name, e.g. "png".
	Format() string
}

// ForFormat returns the renderer for "png" or "pdf" (case-insensitive).
func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "png":
		return pngRenderer{}, nil
	case "pdf":
		return pdfRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

type pngRenderer struct{}

func (pngRenderer) Format() string { return "png" }

func (pngRenderer) Render(w io.Writer, t *text.Text, opts ...Option) error {
	img, err := PNG(t, opts...)
	if err != nil {
		return err
	}
	return EncodePNG(w, img)
}

type pdfRenderer struct{}

func (pdfRenderer) Format() string { return "pdf" }

func (pdfRenderer) Render(w io.Writer, t *text.Text, opts ...Option) error {
	return PDF(w, t, opts...)
}
