// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"image/color"

	"github.com/borobysh/aether/chunk"
)

// Defaults.
const (
	DefaultCellSize   = 1024
	DefaultMaxSprites = 15000
)

// DefaultLineColor is the stroke color the default setup applies: light
// grey at half opacity.
var DefaultLineColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0x80}

// Styler is implemented by batches that accept a vector line style.
type Styler interface {
	SetLineStyle(width float64, c color.Color)
}

// DefaultSetup gives b a 1px DefaultLineColor line style if b is a Styler.
func DefaultSetup(b chunk.Batch) {
	if s, ok := b.(Styler); ok {
		s.SetLineStyle(1, DefaultLineColor)
	}
}

// Option configures a layer during creation.
type Option func(*layerOptions)

type layerOptions struct {
	cellSize   float64
	setup      func(chunk.Batch)
	maxSprites int
}

func defaultOptions() layerOptions {
	return layerOptions{
		cellSize:   DefaultCellSize,
		setup:      DefaultSetup,
		maxSprites: DefaultMaxSprites,
	}
}

func buildOptions(opts []Option) layerOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCellSize sets the cell size of a CellLayer.
func WithCellSize(size float64) Option {
	return func(o *layerOptions) {
		o.cellSize = size
	}
}

// WithSetup replaces the per-rebuild setup of a CellLayer. A nil fn
// disables setup.
func WithSetup(fn func(b chunk.Batch)) Option {
	return func(o *layerOptions) {
		o.setup = fn
	}
}

// WithMaxSprites caps how many sprites a SpriteLayer draws per frame.
// Values <= 0 are ignored.
func WithMaxSprites(n int) Option {
	return func(o *layerOptions) {
		if n > 0 {
			o.maxSprites = n
		}
	}
}
