// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas is a drawing surface for chunk caches built on gogpu/gg.
//
// Each [Batch] wraps a [recording.Recorder]: item draw callbacks record
// vector commands in world coordinates, and [Canvas.Render] replays the
// commands of every visible batch onto a *gg.Context through the view
// transform. Recording once and replaying per frame keeps the per-cell
// rebuild cost independent of how often the view changes.
//
//	cv := canvas.New(1920, 1080)
//	cache, _ := chunk.New(1024, cv, func(b *canvas.Batch, e Edge) {
//		r := b.Recorder()
//		r.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
//		r.Stroke()
//	})
//	...
//	dc := gg.NewContext(1920, 1080)
//	_ = cv.Render(dc, cam.Matrix())
//
// Stroke widths are applied in screen pixels, so lines keep their width at
// every zoom level.
package canvas
