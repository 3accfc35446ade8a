// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/imagetext/text"
)

func TestPDF(t *testing.T) {
	tests := []struct {
		name string
		txt  *text.Text
	}{
		{"single line", newText(t, "Hello")},
		{"multiline", newText(t, "Hello\nWorld")},
		{"vertical", newText(t, "abc", text.WithDirection(text.DirectionTTB))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PDF(&buf, tt.txt, WithMargin(2)); err != nil {
				t.Fatalf("PDF failed: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
			}
		})
	}
}

func TestPDFErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, newText(t, "Hello", text.WithFont(text.BasicFont()))); !errors.Is(err, ErrUnsupportedFont) {
		t.Errorf("bitmap font error = %v, want ErrUnsupportedFont", err)
	}
	if err := PDF(&buf, newText(t, "")); !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("empty text error = %v, want ErrEmptyOutput", err)
	}
}
