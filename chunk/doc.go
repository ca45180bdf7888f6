// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package chunk implements a chunked render cache: items are bucketed into
// square cells and each cell owns one drawable batch that is rebuilt only
// when the cell is dirty.
//
// # Lifecycle
//
// A [Cache] is created with a [Container] that produces batches and a
// per-item draw callback:
//
//	c, _ := chunk.New(1024, surface, func(b *canvas.Batch, e Edge) {
//		b.Recorder().DrawLine(e.X1, e.Y1, e.X2, e.Y2)
//	})
//	c.IndexElement(e, aether.Pt(e.X1, e.Y1), aether.Pt(e.X2, e.Y2))
//	c.Redraw(false)          // rebuild dirty cells
//	c.Cull(cam.ViewBounds()) // hide batches far from the view
//
// Rebuilding a cell always starts from scratch: the batch is cleared, the
// optional setup callback runs once, then every item of the cell is drawn in
// the order it was indexed.
//
// # Culling
//
// [Cache.Cull] hides batches whose cell lies outside the view's cell range
// expanded by one cell on every side. Hidden batches keep their content, so
// scrolling back requires no rebuild.
//
// A Cache is not safe for concurrent use.
package chunk
