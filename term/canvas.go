// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package term

import (
	"math"
	"slices"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/chunk"
	"github.com/gdamore/tcell/v2"
)

// Canvas owns terminal batches and draws them onto a tcell.Screen.
type Canvas struct {
	children  []*Batch
	destroyed bool
}

var _ chunk.Container[*Batch] = (*Canvas)(nil)

// New creates an empty canvas.
func New() *Canvas {
	return &Canvas{}
}

// NewBatch creates an empty visible batch drawn above existing ones.
// On a destroyed canvas the batch is returned detached.
func (c *Canvas) NewBatch() *Batch {
	b := newBatch()
	if !c.destroyed {
		c.children = append(c.children, b)
	}
	return b
}

// RemoveChild detaches b without destroying it.
func (c *Canvas) RemoveChild(b *Batch) {
	c.children = slices.DeleteFunc(c.children, func(child *Batch) bool { return child == b })
}

// Len returns the number of attached batches.
func (c *Canvas) Len() int {
	return len(c.children)
}

// Destroy destroys every attached batch. It is safe to call more than once.
func (c *Canvas) Destroy() {
	if c.destroyed {
		return
	}
	for _, b := range c.children {
		b.Destroy()
	}
	c.children = nil
	c.destroyed = true
}

// Render draws every visible batch onto screen, mapping world coordinates
// to terminal cells with cam. It does not clear or show the screen.
func (c *Canvas) Render(screen tcell.Screen, cam aether.Camera) error {
	if c.destroyed {
		return aether.ErrDestroyed
	}
	if cam == nil {
		return aether.ErrNilCamera
	}
	w, h := screen.Size()
	for _, b := range c.children {
		if !b.visible {
			continue
		}
		for _, l := range b.lines {
			drawLine(screen, w, h, cam.ToScreen(l.From), cam.ToScreen(l.To), l.Rune, l.Style)
		}
		for _, g := range b.glyphs {
			p := cam.ToScreen(g.Pos)
			x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
			if x >= 0 && x < w && y >= 0 && y < h {
				screen.SetContent(x, y, g.Rune, nil, g.Style)
			}
		}
	}
	return nil
}

// drawLine clips the segment to the screen and rasterizes it.
func drawLine(screen tcell.Screen, w, h int, a, b aether.Point, r rune, style tcell.Style) {
	a, b, ok := clipSegment(a, b, float64(w), float64(h))
	if !ok {
		return
	}
	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	bresenham(x0, y0, x1, y1, func(x, y int) {
		if x >= 0 && x < w && y >= 0 && y < h {
			screen.SetContent(x, y, r, nil, style)
		}
	})
}

// clipSegment clips a..b to [0, w] x [0, h] with the Liang-Barsky
// algorithm. ok is false when nothing remains.
func clipSegment(a, b aether.Point, w, h float64) (aether.Point, aether.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X},
		{dx, w - a.X},
		{-dy, a.Y},
		{dy, h - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	return aether.Pt(a.X+t0*dx, a.Y+t0*dy), aether.Pt(a.X+t1*dx, a.Y+t1*dy), true
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
