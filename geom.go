// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package aether

import "math"

// Point is a position in world or screen space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// Width and Height are expected to be non-negative; use Normalize on
// rectangles built from arbitrary corners.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromPoints returns the smallest rectangle containing a and b.
func RectFromPoints(a, b Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Normalize returns r with non-negative width and height covering the same area.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return RectFromPoints(
		Point{X: math.Min(r.X, o.X), Y: math.Min(r.Y, o.Y)},
		Point{X: math.Max(r.X+r.Width, o.X+o.Width), Y: math.Max(r.Y+r.Height, o.Y+o.Height)},
	)
}

// Camera supplies the current view and coordinate conversion.
// The core reads it once per frame and never mutates it.
type Camera interface {
	// ViewBounds returns the visible world rectangle.
	ViewBounds() Rect

	// ToWorld converts a screen point to world coordinates.
	ToWorld(screen Point) Point

	// ToScreen converts a world point to screen coordinates.
	ToScreen(world Point) Point

	// FitBounds moves and zooms the camera so bounds fills the view.
	FitBounds(bounds Rect)
}
