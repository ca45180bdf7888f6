// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package aether

import "math"

// Cell is an integer cell coordinate obtained by flooring a world
// coordinate divided by a cell size.
type Cell struct {
	X, Y int32
}

// CellKey is a Cell packed into a single integer for map keys.
type CellKey uint64

const keyOffset = 1 << 31

// Key packs c into a CellKey. Every int32 pair maps to a distinct key.
func (c Cell) Key() CellKey {
	ux := uint32(int64(c.X) + keyOffset)
	uy := uint32(int64(c.Y) + keyOffset)
	return CellKey(uint64(ux)<<32 | uint64(uy))
}

// Cell unpacks k.
func (k CellKey) Cell() Cell {
	return Cell{
		X: int32(int64(uint32(k>>32)) - keyOffset),
		Y: int32(int64(uint32(k)) - keyOffset),
	}
}

// ValidCellSize reports whether size can be used as a cell size.
func ValidCellSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 1)
}

// CellIndex returns floor(v / size) saturated to the int32 range.
// NaN maps to 0.
func CellIndex(v, size float64) int32 {
	f := math.Floor(v / size)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// CellOf returns the cell containing (x, y).
func CellOf(x, y, size float64) Cell {
	return Cell{X: CellIndex(x, size), Y: CellIndex(y, size)}
}

// CellRange returns the first and last cell covered by r, inclusive.
// A point on a cell's far edge belongs to the next cell, matching CellOf.
func CellRange(r Rect, size float64) (lo, hi Cell) {
	lo = CellOf(r.X, r.Y, size)
	hi = CellOf(r.X+r.Width, r.Y+r.Height, size)
	return lo, hi
}

// Bounds returns the world rectangle covered by c.
func (c Cell) Bounds(size float64) Rect {
	return Rect{X: float64(c.X) * size, Y: float64(c.Y) * size, Width: size, Height: size}
}

// Within reports whether c lies inside the inclusive range [lo, hi].
func (c Cell) Within(lo, hi Cell) bool {
	return c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y
}
