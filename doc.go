// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package aether provides spatial indexing and incremental, chunked
// redrawing for large 2D scenes such as graphs, maps and diagrams.
//
// # Overview
//
// Two components do the heavy lifting:
//
//   - [github.com/borobysh/aether/spatial]: a uniform hash grid mapping
//     world cells to entity ids, with exact (DDA) or bounding-box line
//     coverage and range/point queries.
//   - [github.com/borobysh/aether/chunk]: a cache that groups drawable items
//     into fixed-size cells, owns one drawing batch per cell, rebuilds only
//     dirty cells and hides batches that fall outside the view.
//
// The [github.com/borobysh/aether/engine] package composes them: every frame
// the camera view is queried against the shared grid and the resulting id
// set is forwarded to each layer.
//
// This package holds the pieces shared by all sub-packages: world geometry
// ([Point], [Rect]), cell coordinates ([Cell], [CellKey]), the [Camera]
// contract and the package logger.
//
// # Coordinate System
//
// World coordinates are float64 with Y increasing down, matching gogpu/gg.
// A cell is the half-open square [cx*size, (cx+1)*size) x [cy*size, (cy+1)*size).
//
// # Concurrency
//
// Grids, caches and layers are owned by a single frame-update call chain and
// are not safe for concurrent use. Only [SetLogger] and [Logger] may be called
// from any goroutine.
package aether
