// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package chunk

import (
	"fmt"
	"slices"

	"github.com/borobysh/aether"
)

// Cache buckets items of type T into cells and keeps one batch of type B per
// cell with drawn content.
type Cache[T any, B Batch] struct {
	cellSize  float64
	container Container[B]
	draw      DrawFunc[T, B]
	setup     SetupFunc[B]

	items   map[aether.CellKey][]T
	batches map[aether.CellKey]B
	dirty   map[aether.CellKey]struct{}

	destroyed bool
}

// Stats reports cache occupancy.
type Stats struct {
	Cells   int // cells holding at least one item
	Dirty   int // cells waiting for a rebuild
	Batches int // live batches
	Visible int // live batches currently shown
}

// New creates an empty cache.
//
// Returns aether.ErrInvalidCellSize for a non-positive or non-finite cell
// size, aether.ErrNilContainer or aether.ErrNilDrawFunc for missing
// collaborators.
func New[T any, B Batch](cellSize float64, container Container[B], draw DrawFunc[T, B], opts ...Option[B]) (*Cache[T, B], error) {
	if !aether.ValidCellSize(cellSize) {
		return nil, fmt.Errorf("chunk: cell size %v: %w", cellSize, aether.ErrInvalidCellSize)
	}
	if container == nil {
		return nil, aether.ErrNilContainer
	}
	if draw == nil {
		return nil, aether.ErrNilDrawFunc
	}
	var o cacheOptions[B]
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[T, B]{
		cellSize:  cellSize,
		container: container,
		draw:      draw,
		setup:     o.setup,
		items:     make(map[aether.CellKey][]T),
		batches:   make(map[aether.CellKey]B),
		dirty:     make(map[aether.CellKey]struct{}),
	}, nil
}

// CellSize returns the cache's cell size.
func (c *Cache[T, B]) CellSize() float64 {
	return c.cellSize
}

// Destroyed reports whether Destroy has been called.
func (c *Cache[T, B]) Destroyed() bool {
	return c.destroyed
}

// IndexElement appends item to every cell of the bounding box spanned by
// start and end and marks those cells dirty. An item spanning several cells
// is referenced from each of them.
//
// The cost is proportional to the box area in cells and is not capped;
// size cells so that items span few of them.
func (c *Cache[T, B]) IndexElement(item T, start, end aether.Point) {
	if c.destroyed {
		return
	}
	lo, hi := aether.CellRange(aether.RectFromPoints(start, end), c.cellSize)
	for ix := int64(lo.X); ix <= int64(hi.X); ix++ {
		for iy := int64(lo.Y); iy <= int64(hi.Y); iy++ {
			k := aether.Cell{X: int32(ix), Y: int32(iy)}.Key()
			c.items[k] = append(c.items[k], item)
			c.dirty[k] = struct{}{}
		}
	}
}

// MarkCellDirty marks the cell containing world point (x, y) for rebuild.
// Use it after mutating indexed items in place.
func (c *Cache[T, B]) MarkCellDirty(x, y float64) {
	if c.destroyed {
		return
	}
	c.dirty[aether.CellOf(x, y, c.cellSize).Key()] = struct{}{}
}

// MarkAllDirty marks every cell holding items for rebuild.
func (c *Cache[T, B]) MarkAllDirty() {
	if c.destroyed {
		return
	}
	for k := range c.items {
		c.dirty[k] = struct{}{}
	}
}

// IsDirty reports whether cell is waiting for a rebuild.
func (c *Cache[T, B]) IsDirty(cell aether.Cell) bool {
	_, ok := c.dirty[cell.Key()]
	return ok
}

// Redraw rebuilds batches and clears the dirty set.
//
// Without force only dirty cells are processed: a dirty cell with items is
// rebuilt, a dirty cell without items loses its batch. With force every
// cell holding items is rebuilt and batches of cells without items are
// disposed.
//
// Cells are processed in ascending key order; items within a cell are drawn
// in index order.
func (c *Cache[T, B]) Redraw(force bool) {
	if c.destroyed {
		return
	}

	var keys []aether.CellKey
	if force {
		keys = make([]aether.CellKey, 0, len(c.items)+len(c.batches))
		for k := range c.items {
			keys = append(keys, k)
		}
		for k := range c.batches {
			if _, ok := c.items[k]; !ok {
				keys = append(keys, k)
			}
		}
	} else {
		keys = make([]aether.CellKey, 0, len(c.dirty))
		for k := range c.dirty {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var rebuilt, disposed int
	for _, k := range keys {
		if items := c.items[k]; len(items) > 0 {
			c.rebuild(k, items)
			rebuilt++
			continue
		}
		delete(c.items, k)
		if c.dispose(k) {
			disposed++
		}
	}
	clear(c.dirty)

	aether.Logger().Debug("chunk: redraw",
		"force", force,
		"rebuilt", rebuilt,
		"disposed", disposed,
		"batches", len(c.batches))
}

func (c *Cache[T, B]) rebuild(k aether.CellKey, items []T) {
	b, ok := c.batches[k]
	if !ok {
		b = c.container.NewBatch()
		c.batches[k] = b
	}
	b.Clear()
	if c.setup != nil {
		c.setup(b)
	}
	for _, item := range items {
		c.draw(b, item)
	}
}

// dispose removes and destroys the batch of k. It reports whether a batch
// existed.
func (c *Cache[T, B]) dispose(k aether.CellKey) bool {
	b, ok := c.batches[k]
	if !ok {
		return false
	}
	b.Clear()
	c.container.RemoveChild(b)
	b.Destroy()
	delete(c.batches, k)
	return true
}

// Cull shows batches whose cell lies within view's cell range expanded by
// one cell on every side and hides the rest. Content is kept either way.
func (c *Cache[T, B]) Cull(view aether.Rect) {
	if c.destroyed {
		return
	}
	lo, hi := aether.CellRange(view.Normalize(), c.cellSize)
	minX, maxX := int64(lo.X)-1, int64(hi.X)+1
	minY, maxY := int64(lo.Y)-1, int64(hi.Y)+1
	for k, b := range c.batches {
		cell := k.Cell()
		x, y := int64(cell.X), int64(cell.Y)
		b.SetVisible(x >= minX && x <= maxX && y >= minY && y <= maxY)
	}
}

// ClearCell drops the items of cell and marks it dirty, so the next Redraw
// disposes its batch.
func (c *Cache[T, B]) ClearCell(cell aether.Cell) {
	if c.destroyed {
		return
	}
	k := cell.Key()
	delete(c.items, k)
	c.dirty[k] = struct{}{}
}

// RemoveFunc drops every item for which pred returns true from every cell
// and returns the number of references removed. Touched cells are marked
// dirty; cells left without items are dropped.
func (c *Cache[T, B]) RemoveFunc(pred func(T) bool) int {
	if c.destroyed {
		return 0
	}
	removed := 0
	for k, items := range c.items {
		kept := slices.DeleteFunc(items, pred)
		n := len(items) - len(kept)
		if n == 0 {
			continue
		}
		removed += n
		c.dirty[k] = struct{}{}
		if len(kept) == 0 {
			delete(c.items, k)
		} else {
			c.items[k] = kept
		}
	}
	return removed
}

// Items returns a copy of the items indexed in cell.
func (c *Cache[T, B]) Items(cell aether.Cell) []T {
	return slices.Clone(c.items[cell.Key()])
}

// Cells returns the cells holding items, sorted by key.
func (c *Cache[T, B]) Cells() []aether.Cell {
	keys := make([]aether.CellKey, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	cells := make([]aether.Cell, len(keys))
	for i, k := range keys {
		cells[i] = k.Cell()
	}
	return cells
}

// Batch returns the batch of cell, if one exists.
func (c *Cache[T, B]) Batch(cell aether.Cell) (B, bool) {
	b, ok := c.batches[cell.Key()]
	return b, ok
}

// Stats returns cache occupancy counters.
func (c *Cache[T, B]) Stats() Stats {
	s := Stats{
		Cells:   len(c.items),
		Dirty:   len(c.dirty),
		Batches: len(c.batches),
	}
	for _, b := range c.batches {
		if b.Visible() {
			s.Visible++
		}
	}
	return s
}

// ClearAllGraphics clears the content of every batch without disposing it
// and marks all cells dirty, so the next Redraw repopulates them.
func (c *Cache[T, B]) ClearAllGraphics() {
	if c.destroyed {
		return
	}
	for _, b := range c.batches {
		b.Clear()
	}
	c.MarkAllDirty()
}

// ClearIndexing disposes every batch and drops all items and dirty marks.
// The cache stays usable.
func (c *Cache[T, B]) ClearIndexing() {
	if c.destroyed {
		return
	}
	c.reset()
}

func (c *Cache[T, B]) reset() {
	for k := range c.batches {
		c.dispose(k)
	}
	clear(c.items)
	clear(c.dirty)
}

// Destroy disposes every batch, drops all state and destroys the container.
// It is safe to call more than once; after the first call every mutating
// method is a no-op.
func (c *Cache[T, B]) Destroy() {
	if c.destroyed {
		return
	}
	c.reset()
	c.container.Destroy()
	c.destroyed = true
}
