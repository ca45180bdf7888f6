// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"github.com/borobysh/aether"
	"github.com/borobysh/aether/chunk"
)

// GraphicsLayer owns one batch that callers redraw as a whole.
type GraphicsLayer[B chunk.Batch] struct {
	Base
	container chunk.Container[B]
	batch     B
	destroyed bool
}

// NewGraphicsLayer creates a layer with a single batch from container.
func NewGraphicsLayer[B chunk.Batch](container chunk.Container[B]) (*GraphicsLayer[B], error) {
	if container == nil {
		return nil, aether.ErrNilContainer
	}
	return &GraphicsLayer[B]{
		container: container,
		batch:     container.NewBatch(),
	}, nil
}

// Batch returns the layer's batch.
func (l *GraphicsLayer[B]) Batch() B {
	return l.batch
}

// Draw clears the batch and calls fn to repopulate it.
func (l *GraphicsLayer[B]) Draw(fn func(b B)) {
	if l.destroyed {
		return
	}
	l.batch.Clear()
	fn(l.batch)
}

// Clear drops the batch content.
func (l *GraphicsLayer[B]) Clear() {
	if l.destroyed {
		return
	}
	l.batch.Clear()
}

// Destroy releases the batch and the container.
// It is safe to call more than once.
func (l *GraphicsLayer[B]) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true
	l.batch.Clear()
	l.container.RemoveChild(l.batch)
	l.batch.Destroy()
	l.container.Destroy()
}
