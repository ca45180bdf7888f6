// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"image/color"
	"maps"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/chunk"
	"github.com/borobysh/aether/spatial"
)

// Sprite is a point-like entity drawn by a SpriteLayer.
type Sprite struct {
	Pos    aether.Point
	Radius float64
	Color  color.Color
}

// SpriteDrawFunc draws one sprite into a batch.
type SpriteDrawFunc[B chunk.Batch] func(b B, id string, s Sprite)

// SpriteLayer draws the sprites whose ids the engine reports visible.
// Sprite ids are expected to be indexed in the engine grid by the caller,
// for example with Index.
type SpriteLayer[B chunk.Batch] struct {
	Base
	container chunk.Container[B]
	batch     B
	draw      SpriteDrawFunc[B]
	max       int

	sprites map[string]Sprite
	last    spatial.IDSet
	stale   bool
	shown   int

	destroyed bool
}

// NewSpriteLayer creates a sprite layer. At most WithMaxSprites sprites are
// drawn per frame, DefaultMaxSprites if not set.
func NewSpriteLayer[B chunk.Batch](container chunk.Container[B], draw SpriteDrawFunc[B], opts ...Option) (*SpriteLayer[B], error) {
	if container == nil {
		return nil, aether.ErrNilContainer
	}
	if draw == nil {
		return nil, aether.ErrNilDrawFunc
	}
	o := buildOptions(opts)
	return &SpriteLayer[B]{
		container: container,
		batch:     container.NewBatch(),
		draw:      draw,
		max:       o.maxSprites,
		sprites:   make(map[string]Sprite),
		stale:     true,
	}, nil
}

// SetSprites replaces the sprite set. The batch is redrawn on the next
// Update.
func (l *SpriteLayer[B]) SetSprites(sprites map[string]Sprite) {
	if l.destroyed {
		return
	}
	l.sprites = maps.Clone(sprites)
	if l.sprites == nil {
		l.sprites = make(map[string]Sprite)
	}
	l.stale = true
}

// Sprite returns the sprite registered under id.
func (l *SpriteLayer[B]) Sprite(id string) (Sprite, bool) {
	s, ok := l.sprites[id]
	return s, ok
}

// Index adds every sprite to g as a node.
func (l *SpriteLayer[B]) Index(g *spatial.Grid) {
	for id, s := range l.sprites {
		g.AddNode(id, s.Pos.X, s.Pos.Y)
	}
}

// Batch returns the layer's batch.
func (l *SpriteLayer[B]) Batch() B {
	return l.batch
}

// Shown returns how many sprites the last redraw drew.
func (l *SpriteLayer[B]) Shown() int {
	return l.shown
}

// Update redraws the batch with the visible sprites, in id order, up to the
// layer's limit. It does nothing when neither the sprites nor the visible
// set changed since the last redraw.
func (l *SpriteLayer[B]) Update(visible spatial.IDSet) {
	if l.destroyed {
		return
	}
	if !l.stale && maps.Equal(l.last, visible) {
		return
	}
	l.batch.Clear()
	l.shown = 0
	for _, id := range visible.Sorted() {
		if l.shown >= l.max {
			break
		}
		s, ok := l.sprites[id]
		if !ok {
			continue
		}
		l.draw(l.batch, id, s)
		l.shown++
	}
	l.last = maps.Clone(visible)
	l.stale = false
}

// Destroy releases the batch and the container.
// It is safe to call more than once.
func (l *SpriteLayer[B]) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true
	l.batch.Clear()
	l.container.RemoveChild(l.batch)
	l.batch.Destroy()
	l.container.Destroy()
	clear(l.sprites)
}
