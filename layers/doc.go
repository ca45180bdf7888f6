// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layers provides the layer kinds an engine composes:
//
//   - [CellLayer] caches large amounts of static geometry in a chunk.Cache
//     and culls cell batches against the camera every frame.
//   - [GraphicsLayer] owns a single batch that callers redraw on demand.
//   - [SpriteLayer] redraws per-id sprites, keeping only those whose id the
//     engine reports visible.
//
// Layers are generic over the batch type of their drawing surface, so the
// same layer works with the canvas and term backends.
package layers
