// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package spatial

import (
	"fmt"
	"math"

	"github.com/borobysh/aether"
)

// Grid is a uniform spatial hash grid mapping cells to entity id sets.
//
// The grid owns only id-to-cell associations; it never holds entity objects.
// The Grid is not safe for concurrent use.
type Grid struct {
	cellSize float64
	limit    int
	cells    map[aether.CellKey]IDSet
}

// Stats holds read-only grid diagnostics for capacity planning.
type Stats struct {
	// CellCount is the number of populated cells.
	CellCount int
	// TotalEntries counts id/cell associations; an id in three cells counts three times.
	TotalEntries int
	// MaxPerCell is the largest id count of any cell.
	MaxPerCell int
	// AvgPerCell is TotalEntries / CellCount, or 0 for an empty grid.
	AvgPerCell float64
	// CellSize is the grid's cell size.
	CellSize float64
}

// NewGrid creates an empty grid with the given cell size.
// Returns aether.ErrInvalidCellSize when cellSize is not a positive finite number.
func NewGrid(cellSize float64, opts ...Option) (*Grid, error) {
	if !aether.ValidCellSize(cellSize) {
		return nil, fmt.Errorf("spatial: cell size %v: %w", cellSize, aether.ErrInvalidCellSize)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.traversalLimit <= 0 {
		return nil, fmt.Errorf("spatial: traversal limit %d: %w", o.traversalLimit, aether.ErrInvalidTraversalLimit)
	}
	return &Grid{
		cellSize: cellSize,
		limit:    o.traversalLimit,
		cells:    make(map[aether.CellKey]IDSet),
	}, nil
}

// CellSize returns the grid's cell size.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// TraversalLimit returns the maximum number of cells a precise edge insert visits.
func (g *Grid) TraversalLimit() int {
	return g.limit
}

// Len returns the number of populated cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// CellOf returns the cell containing (x, y).
func (g *Grid) CellOf(x, y float64) aether.Cell {
	return aether.CellOf(x, y, g.cellSize)
}

func (g *Grid) insert(k aether.CellKey, id string) {
	set, ok := g.cells[k]
	if !ok {
		set = make(IDSet, 1)
		g.cells[k] = set
	}
	set[id] = struct{}{}
}

func (g *Grid) removeAt(k aether.CellKey, id string) {
	set, ok := g.cells[k]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(g.cells, k)
	}
}

// AddNode inserts id into the cell containing (x, y).
// Inserting the same id twice is a no-op.
func (g *Grid) AddNode(id string, x, y float64) {
	g.insert(g.CellOf(x, y).Key(), id)
}

// AddEdge inserts id into every cell touched by the segment from (x1, y1)
// to (x2, y2) according to mode.
//
// Approximate coverage indexes every cell of the bounding box and is not
// bounded by the traversal limit: its cost grows with the box area in
// cells, so boxes spanning millions of cells should use Precise coverage
// or a coarser grid.
//
// It returns false only when a Precise traversal hit the grid's traversal
// limit. In that case the id is indexed in the cells visited so far and a
// warning is logged; callers that need completeness over precision can
// Remove the id and insert it again with Approximate coverage.
func (g *Grid) AddEdge(id string, x1, y1, x2, y2 float64, mode Coverage) bool {
	if mode == Approximate {
		g.addBox(id, x1, y1, x2, y2)
		return true
	}

	cells, complete := LineCells(x1, y1, x2, y2, g.cellSize, g.limit)
	for _, c := range cells {
		g.insert(c.Key(), id)
	}
	if !complete {
		aether.Logger().Warn("spatial: line traversal exceeded cell limit",
			"id", id,
			"limit", g.limit,
			"from", aether.Pt(x1, y1),
			"to", aether.Pt(x2, y2))
	}
	return complete
}

func (g *Grid) addBox(id string, x1, y1, x2, y2 float64) {
	lo, hi := BoundsCells(x1, y1, x2, y2, g.cellSize)
	for ix := int64(lo.X); ix <= int64(hi.X); ix++ {
		for iy := int64(lo.Y); iy <= int64(hi.Y); iy++ {
			g.insert(aether.Cell{X: int32(ix), Y: int32(iy)}.Key(), id)
		}
	}
}

// Remove deletes id from every cell. Its cost is proportional to the number
// of populated cells, which is acceptable because removal is rare relative
// to queries.
func (g *Grid) Remove(id string) {
	for k, set := range g.cells {
		if _, ok := set[id]; !ok {
			continue
		}
		delete(set, id)
		if len(set) == 0 {
			delete(g.cells, k)
		}
	}
}

// RemoveFromCell deletes id from the cell containing (x, y) only.
func (g *Grid) RemoveFromCell(id string, x, y float64) {
	g.removeAt(g.CellOf(x, y).Key(), id)
}

// UpdateNode moves a point entity from its old position to its new one.
// It does nothing when both positions fall in the same cell, the common
// case for small per-frame movements.
func (g *Grid) UpdateNode(id string, oldX, oldY, newX, newY float64) {
	oldKey := g.CellOf(oldX, oldY).Key()
	newKey := g.CellOf(newX, newY).Key()
	if oldKey == newKey {
		return
	}
	g.removeAt(oldKey, id)
	g.insert(newKey, id)
}

// QueryRange returns the ids of every cell overlapping the rectangle
// [x, x+width] x [y, y+height].
//
// QueryRange panics if width or height is negative or NaN; normalize
// rectangles built from arbitrary corners with aether.Rect.Normalize.
func (g *Grid) QueryRange(x, y, width, height float64) IDSet {
	if !(width >= 0) {
		panic(fmt.Sprintf("spatial: QueryRange width must be non-negative, got %v", width))
	}
	if !(height >= 0) {
		panic(fmt.Sprintf("spatial: QueryRange height must be non-negative, got %v", height))
	}

	found := make(IDSet)
	lo, hi := aether.CellRange(aether.Rect{X: x, Y: y, Width: width, Height: height}, g.cellSize)

	// Scan the populated cells when the range holds more cells than the
	// grid. w*h can overflow int64 for saturated ranges, so compare by
	// division.
	w := int64(hi.X) - int64(lo.X) + 1
	h := int64(hi.Y) - int64(lo.Y) + 1
	if w > int64(len(g.cells))/h {
		for k, set := range g.cells {
			if k.Cell().Within(lo, hi) {
				found.Union(set)
			}
		}
		return found
	}

	for ix := int64(lo.X); ix <= int64(hi.X); ix++ {
		for iy := int64(lo.Y); iy <= int64(hi.Y); iy++ {
			if set, ok := g.cells[aether.Cell{X: int32(ix), Y: int32(iy)}.Key()]; ok {
				found.Union(set)
			}
		}
	}
	return found
}

// QueryRect is QueryRange for an aether.Rect.
func (g *Grid) QueryRect(r aether.Rect) IDSet {
	return g.QueryRange(r.X, r.Y, r.Width, r.Height)
}

// QueryPoint returns the ids of the cell containing (x, y). The result is a
// copy and is empty for a cell that was never populated.
func (g *Grid) QueryPoint(x, y float64) IDSet {
	set := g.cells[g.CellOf(x, y).Key()]
	out := make(IDSet, len(set))
	out.Union(set)
	return out
}

// CellsOf returns every cell currently holding id, in no particular order.
// Like Remove, it scans all populated cells and is meant for diagnostics.
func (g *Grid) CellsOf(id string) []aether.Cell {
	var out []aether.Cell
	for k, set := range g.cells {
		if set.Has(id) {
			out = append(out, k.Cell())
		}
	}
	return out
}

// Stats returns grid diagnostics. It does not modify the grid.
func (g *Grid) Stats() Stats {
	s := Stats{
		CellCount: len(g.cells),
		CellSize:  g.cellSize,
	}
	for _, set := range g.cells {
		s.TotalEntries += len(set)
		s.MaxPerCell = max(s.MaxPerCell, len(set))
	}
	if s.CellCount > 0 {
		s.AvgPerCell = math.Round(float64(s.TotalEntries)/float64(s.CellCount)*100) / 100
	}
	return s
}

// Clear drops all cell data. The cell size is kept.
func (g *Grid) Clear() {
	clear(g.cells)
}
