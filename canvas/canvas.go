// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"fmt"
	"slices"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/chunk"
	"github.com/gogpu/gg"
)

// Canvas owns an ordered list of batches and composites them onto a
// gg.Context.
type Canvas struct {
	width, height int
	children      []*Batch
	destroyed     bool
}

var _ chunk.Container[*Batch] = (*Canvas)(nil)

// New creates an empty canvas. width and height size the recording surface
// of each batch.
func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// NewBatch creates an empty visible batch and appends it as the topmost
// child. On a destroyed canvas the batch is returned detached.
func (c *Canvas) NewBatch() *Batch {
	b := newBatch(c.width, c.height)
	if !c.destroyed {
		c.children = append(c.children, b)
	}
	return b
}

// RemoveChild detaches b without destroying it.
func (c *Canvas) RemoveChild(b *Batch) {
	c.children = slices.DeleteFunc(c.children, func(child *Batch) bool { return child == b })
}

// Children returns the attached batches in render order.
func (c *Canvas) Children() []*Batch {
	return slices.Clone(c.children)
}

// Len returns the number of attached batches.
func (c *Canvas) Len() int {
	return len(c.children)
}

// Destroy destroys every attached batch and makes the canvas refuse further
// rendering. It is safe to call more than once.
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

// Render draws every visible batch onto dc in child order, transforming
// world coordinates by view. The context's own transform is restored
// afterwards.
func (c *Canvas) Render(dc *gg.Context, view gg.Matrix) error {
	if c.destroyed {
		return aether.ErrDestroyed
	}
	for i, b := range c.children {
		if err := b.Render(dc, view); err != nil {
			return fmt.Errorf("canvas: batch %d: %w", i, err)
		}
	}
	return nil
}
