// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/imagetext/text"
)

// Option configures a rendering call.
type Option func(*config)

type config struct {
	fill       color.Color
	background color.Color
	margin     int
	split      []text.SplitOption
}

func defaultConfig() config {
	return config{
		fill:       color.Black,
		background: color.White,
		margin:     0,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFill sets the text color. Default: black.
func WithFill(c color.Color) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.fill = c
		}
	}
}

// WithBackground sets the background color. Use color.Transparent for no
// background. Default: white.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.background = c
		}
	}
}

// WithMargin pads the output on every side, in pixels.
func WithMargin(px int) Option {
	return func(cfg *config) {
		if px >= 0 {
			cfg.margin = px
		}
	}
}

// WithLayout forwards anchor, alignment and offset options to the text
// layout.
func WithLayout(opts ...text.SplitOption) Option {
	return func(cfg *config) {
		cfg.split = append(cfg.split, opts...)
	}
}

// strokeFill returns the stroke color of t, falling back to the fill.
func (cfg config) strokeFill(t *text.Text) color.Color {
	if c := t.StrokeFill(); c != nil {
		return c
	}
	return cfg.fill
}

// options rebuilds the option list of cfg.
func (cfg config) options() []Option {
	return []Option{
		WithFill(cfg.fill),
		WithBackground(cfg.background),
		WithMargin(cfg.margin),
		WithLayout(cfg.split...),
	}
}
