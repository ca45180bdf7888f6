// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"fmt"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/chunk"
	"github.com/borobysh/aether/engine"
	"github.com/borobysh/aether/spatial"
)

// BoundsFunc returns two corners of the bounding box of item.
type BoundsFunc[T any] func(item T) (start, end aether.Point)

// CellLayer renders items through a chunk.Cache and culls its batches
// against the engine camera on every Update.
type CellLayer[T any, B chunk.Batch] struct {
	Base
	*chunk.Cache[T, B]
}

var _ engine.Layer = (*CellLayer[int, chunk.Batch])(nil)

// NewCellLayer creates a cell layer drawing items with draw onto batches of
// container. Batches get DefaultSetup unless WithSetup says otherwise.
func NewCellLayer[T any, B chunk.Batch](container chunk.Container[B], draw chunk.DrawFunc[T, B], opts ...Option) (*CellLayer[T, B], error) {
	o := buildOptions(opts)
	var cacheOpts []chunk.Option[B]
	if setup := o.setup; setup != nil {
		cacheOpts = append(cacheOpts, chunk.WithSetup(func(b B) { setup(b) }))
	}
	cache, err := chunk.New(o.cellSize, container, draw, cacheOpts...)
	if err != nil {
		return nil, fmt.Errorf("layers: %w", err)
	}
	return &CellLayer[T, B]{Cache: cache}, nil
}

// SetData replaces the layer content: existing batches are disposed, every
// item is indexed by its bounding box and all cells are rebuilt.
func (l *CellLayer[T, B]) SetData(items []T, bounds BoundsFunc[T]) {
	l.ClearIndexing()
	for _, item := range items {
		start, end := bounds(item)
		l.IndexElement(item, start, end)
	}
	l.Redraw(false)
}

// Update culls batches against the camera of the owning engine. The
// visible id set is not needed: culling works on cell coordinates only.
func (l *CellLayer[T, B]) Update(spatial.IDSet) {
	e := l.Engine()
	if e == nil {
		return
	}
	l.Cull(e.Camera().ViewBounds())
}

// Destroy releases every batch and the container.
func (l *CellLayer[T, B]) Destroy() {
	l.Cache.Destroy()
}
