// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import "github.com/borobysh/aether/spatial"

// DefaultCellSize is the grid cell size used when no grid is supplied.
const DefaultCellSize = 512

// Option configures an Engine during creation.
type Option func(*engineOptions)

type engineOptions struct {
	cellSize float64
	grid     *spatial.Grid
}

func defaultOptions() engineOptions {
	return engineOptions{
		cellSize: DefaultCellSize,
	}
}

// WithCellSize sets the cell size of the engine's own grid.
// It is ignored when WithGrid is also given.
func WithCellSize(size float64) Option {
	return func(o *engineOptions) {
		o.cellSize = size
	}
}

// WithGrid makes the engine use an existing grid instead of creating one.
func WithGrid(g *spatial.Grid) Option {
	return func(o *engineOptions) {
		o.grid = g
	}
}
