// Package imagetext is a text layout engine for image drawing.
//
// # Overview
//
// imagetext measures and lays out runs of text for rasterization. The
// layout core lives in the text sub-package:
//
//   - text.Font: closed set of font variants (outline, bitmap, transposed)
//   - text.Text: a payload plus styling (mode, spacing, direction, features)
//   - Text.Length / Text.BBox: single-line advance and multi-line bounds
//   - Text.Lines: positioned line records honoring anchor and alignment
//   - Text.Wrap: greedy line breaking with height limits and font scaling
//
// The render sub-package consumes line records and paints them into PNG or
// PDF output. cmd/imagetext is a command line front end with a REPL.
//
// # Quick Start
//
//	t, err := text.New("Hello World!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outcome, err := t.Wrap(50, text.WithHeight(40))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if rest, ok := outcome.Remainder(); ok {
//	    fmt.Println("did not fit:", rest.String())
//	}
//	bbox, _ := t.BBox(text.WithAlign(text.AlignCenter))
//
// # Coordinate System
//
// Pixel coordinates with the origin at the top-left, X increasing right and
// Y increasing down. Advances keep 1/64 pixel precision.
//
// # Logging
//
// The library is silent by default. Use SetLogger to receive debug output
// from wrapping and font scaling.
package imagetext

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
