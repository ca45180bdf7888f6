// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package camera provides an orthographic 2D camera implementing
// aether.Camera.
//
// The camera looks at a world position placed at the center of a viewport
// of fixed screen size. Zoom is the number of screen pixels per world unit.
package camera

import (
	"fmt"
	"math"

	"github.com/borobysh/aether"
	"github.com/gogpu/gg"
)

// Default zoom limits.
const (
	DefaultMinZoom = 0.01
	DefaultMaxZoom = 100
)

// Option configures an Ortho camera during creation.
type Option func(*Ortho)

// WithZoomLimits bounds the zoom factor. Limits that are not positive, or
// where min > max, are ignored.
func WithZoomLimits(minZoom, maxZoom float64) Option {
	return func(c *Ortho) {
		if minZoom > 0 && maxZoom >= minZoom {
			c.minZoom, c.maxZoom = minZoom, maxZoom
		}
	}
}

// Ortho is an orthographic camera.
type Ortho struct {
	width, height float64
	pos           aether.Point
	zoom          float64

	minZoom, maxZoom float64
}

var _ aether.Camera = (*Ortho)(nil)

// New creates a camera with a width x height viewport looking at the world
// origin with zoom 1.
// Returns aether.ErrInvalidViewport if either dimension is not positive.
func New(width, height float64, opts ...Option) (*Ortho, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("camera: %vx%v: %w", width, height, aether.ErrInvalidViewport)
	}
	c := &Ortho{
		width:   width,
		height:  height,
		zoom:    1,
		minZoom: DefaultMinZoom,
		maxZoom: DefaultMaxZoom,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.zoom = c.clampZoom(c.zoom)
	return c, nil
}

// Viewport returns the viewport size in screen pixels.
func (c *Ortho) Viewport() (width, height float64) {
	return c.width, c.height
}

// Resize changes the viewport size. Non-positive sizes are ignored.
func (c *Ortho) Resize(width, height float64) {
	if width > 0 && height > 0 {
		c.width, c.height = width, height
	}
}

// Position returns the world point at the center of the viewport.
func (c *Ortho) Position() aether.Point {
	return c.pos
}

// SetPosition centers the viewport on world point p.
func (c *Ortho) SetPosition(p aether.Point) {
	c.pos = p
}

// Pan moves the camera by (dx, dy) screen pixels.
func (c *Ortho) Pan(dx, dy float64) {
	c.pos.X += dx / c.zoom
	c.pos.Y += dy / c.zoom
}

// Zoom returns the current zoom factor.
func (c *Ortho) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the zoom factor, clamped to the camera's limits.
func (c *Ortho) SetZoom(z float64) {
	c.zoom = c.clampZoom(z)
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// screen point p fixed.
func (c *Ortho) ZoomAt(p aether.Point, factor float64) {
	before := c.ToWorld(p)
	c.SetZoom(c.zoom * factor)
	after := c.ToWorld(p)
	c.pos.X += before.X - after.X
	c.pos.Y += before.Y - after.Y
}

func (c *Ortho) clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return c.zoom
	}
	return min(max(z, c.minZoom), c.maxZoom)
}

// ViewBounds returns the world rectangle covered by the viewport.
func (c *Ortho) ViewBounds() aether.Rect {
	w, h := c.width/c.zoom, c.height/c.zoom
	return aether.Rect{X: c.pos.X - w/2, Y: c.pos.Y - h/2, Width: w, Height: h}
}

// ToWorld converts a screen point to world coordinates.
func (c *Ortho) ToWorld(p aether.Point) aether.Point {
	return aether.Pt(
		(p.X-c.width/2)/c.zoom+c.pos.X,
		(p.Y-c.height/2)/c.zoom+c.pos.Y,
	)
}

// ToScreen converts a world point to screen coordinates.
func (c *Ortho) ToScreen(p aether.Point) aether.Point {
	return aether.Pt(
		(p.X-c.pos.X)*c.zoom+c.width/2,
		(p.Y-c.pos.Y)*c.zoom+c.height/2,
	)
}

// FitBounds centers the camera on r and picks the largest zoom, within the
// limits, at which r fits the viewport. An empty r only recenters.
func (c *Ortho) FitBounds(r aether.Rect) {
	r = r.Normalize()
	c.pos = r.Center()
	if r.Width == 0 && r.Height == 0 {
		return
	}
	z := math.Inf(1)
	if r.Width > 0 {
		z = c.width / r.Width
	}
	if r.Height > 0 {
		z = min(z, c.height/r.Height)
	}
	c.SetZoom(z)
}

// Matrix returns the world to screen transform.
func (c *Ortho) Matrix() gg.Matrix {
	return gg.Translate(c.width/2, c.height/2).
		Multiply(gg.Scale(c.zoom, c.zoom)).
		Multiply(gg.Translate(-c.pos.X, -c.pos.Y))
}
