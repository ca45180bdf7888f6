// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package spatial

import (
	"math"

	"github.com/borobysh/aether"
)

// Coverage selects how a line segment is mapped to cells.
type Coverage uint8

const (
	// Precise walks the exact cells crossed by the segment.
	Precise Coverage = iota

	// Approximate covers the segment's axis-aligned bounding box.
	Approximate
)

// String returns the coverage name.
func (c Coverage) String() string {
	switch c {
	case Precise:
		return "precise"
	case Approximate:
		return "approximate"
	default:
		return "unknown"
	}
}

// LineCells returns the ordered cells crossed by the segment from (x1, y1)
// to (x2, y2), starting with the cell holding the first endpoint and ending
// with the cell holding the second.
//
// The traversal is a DDA grid walk: at every step it moves into the
// neighbouring cell whose boundary the segment reaches first, comparing the
// parametric distances tMaxX and tMaxY and advancing the smaller one by its
// per-axis delta. Ties step along Y. A zero-length axis never steps.
//
// At most limit cells are returned. The second result is false when the walk
// was cut short by the limit; the returned prefix is still valid. A limit
// <= 0 means DefaultTraversalLimit.
func LineCells(x1, y1, x2, y2, size float64, limit int) ([]aether.Cell, bool) {
	if limit <= 0 {
		limit = DefaultTraversalLimit
	}
	cx, cy := aether.CellIndex(x1, size), aether.CellIndex(y1, size)
	endX, endY := aether.CellIndex(x2, size), aether.CellIndex(y2, size)

	if cx == endX && cy == endY {
		return []aether.Cell{{X: cx, Y: cy}}, true
	}

	span := absDiff(cx, endX) + absDiff(cy, endY) + 1
	if span > int64(limit) {
		span = int64(limit)
	}
	cells := make([]aether.Cell, 0, span)
	cells = append(cells, aether.Cell{X: cx, Y: cy})

	dx := x2 - x1
	dy := y2 - y1
	stepX, stepY := int32(1), int32(1)
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	tMaxX, tDeltaX := math.Inf(1), math.Inf(1)
	if dx != 0 {
		boundary := float64(cx) * size
		if dx > 0 {
			boundary = (float64(cx) + 1) * size
		}
		tMaxX = (boundary - x1) / dx
		tDeltaX = size / math.Abs(dx)
	}
	tMaxY, tDeltaY := math.Inf(1), math.Inf(1)
	if dy != 0 {
		boundary := float64(cy) * size
		if dy > 0 {
			boundary = (float64(cy) + 1) * size
		}
		tMaxY = (boundary - y1) / dy
		tDeltaY = size / math.Abs(dy)
	}

	for cx != endX || cy != endY {
		if len(cells) >= limit {
			return cells, false
		}
		// An axis that already reached the end cell never steps again, so
		// rounding cannot carry the walk outside the bounding box.
		if cx != endX && (cy == endY || tMaxX < tMaxY) {
			tMaxX += tDeltaX
			cx += stepX
		} else {
			tMaxY += tDeltaY
			cy += stepY
		}
		cells = append(cells, aether.Cell{X: cx, Y: cy})
	}
	return cells, true
}

// BoundsCells returns the inclusive cell range of the bounding box of the
// segment from (x1, y1) to (x2, y2).
func BoundsCells(x1, y1, x2, y2, size float64) (lo, hi aether.Cell) {
	return aether.CellRange(aether.RectFromPoints(aether.Pt(x1, y1), aether.Pt(x2, y2)), size)
}

func absDiff(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}
	return d
}
