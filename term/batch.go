// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package term

import (
	"image/color"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/chunk"
	"github.com/gdamore/tcell/v2"
)

// DefaultLineRune is the rune lines are drawn with.
const DefaultLineRune = '·'

// Glyph is a single rune at a world position.
type Glyph struct {
	Pos   aether.Point
	Rune  rune
	Style tcell.Style
}

// Line is a world-space segment drawn with one rune.
type Line struct {
	From, To aether.Point
	Rune     rune
	Style    tcell.Style
}

// Batch holds terminal primitives for one cell.
type Batch struct {
	glyphs []Glyph
	lines  []Line

	style    tcell.Style
	lineRune rune

	visible   bool
	destroyed bool
}

var _ chunk.Batch = (*Batch)(nil)

func newBatch() *Batch {
	return &Batch{
		style:    tcell.StyleDefault,
		lineRune: DefaultLineRune,
		visible:  true,
	}
}

// SetStyle sets the style of primitives added afterwards.
func (b *Batch) SetStyle(s tcell.Style) {
	b.style = s
}

// SetLineRune sets the rune of lines added afterwards.
func (b *Batch) SetLineRune(r rune) {
	b.lineRune = r
}

// SetLineStyle maps a vector line style to the terminal: the color becomes
// the foreground and widths of 2 or more switch to a solid block rune.
func (b *Batch) SetLineStyle(width float64, c color.Color) {
	b.style = b.style.Foreground(tcell.FromImageColor(c))
	if width >= 2 {
		b.lineRune = '█'
	} else {
		b.lineRune = DefaultLineRune
	}
}

// DrawGlyph adds r at world point p.
func (b *Batch) DrawGlyph(p aether.Point, r rune) {
	if b.destroyed {
		return
	}
	b.glyphs = append(b.glyphs, Glyph{Pos: p, Rune: r, Style: b.style})
}

// DrawLine adds a segment between two world points.
func (b *Batch) DrawLine(from, to aether.Point) {
	if b.destroyed {
		return
	}
	b.lines = append(b.lines, Line{From: from, To: to, Rune: b.lineRune, Style: b.style})
}

// Glyphs returns the recorded glyphs.
func (b *Batch) Glyphs() []Glyph {
	return b.glyphs
}

// Lines returns the recorded lines.
func (b *Batch) Lines() []Line {
	return b.lines
}

// Clear drops all primitives and resets the style.
func (b *Batch) Clear() {
	b.glyphs = b.glyphs[:0]
	b.lines = b.lines[:0]
	b.style = tcell.StyleDefault
	b.lineRune = DefaultLineRune
}

// SetVisible shows or hides the batch.
func (b *Batch) SetVisible(visible bool) {
	b.visible = visible
}

// Visible reports whether the batch is rendered.
func (b *Batch) Visible() bool {
	return b.visible
}

// Destroy drops all primitives. A destroyed batch ignores further drawing.
func (b *Batch) Destroy() {
	b.glyphs = nil
	b.lines = nil
	b.visible = false
	b.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (b *Batch) Destroyed() bool {
	return b.destroyed
}
