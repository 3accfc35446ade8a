// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws laid out text into PNG images and PDF pages.
//
// The text package decides where every line goes; render only paints.
// Each line returned by text.Text.Pens is drawn at its pen origin with a
// face from text.DrawFace (PNG) or a tdewolff/canvas font face (PDF).
//
// # Output Size
//
// The output is sized to the bounding box of the text plus a margin, so
// nothing is clipped. Offsets given with At shift the text inside that
// box rather than enlarging the output.
//
// # Usage
//
//	t, _ := text.New("Hello\nWorld")
//	img, err := render.PNG(t, render.WithFill(color.Black), render.WithMargin(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = render.EncodePNG(os.Stdout, img)
//
// # Limitations
//
//   - PDF output needs an outline font; bitmap fonts are PNG only.
//   - Strokes in PNG output are built by offsetting the glyph mask within
//     the stroke radius.
package render
