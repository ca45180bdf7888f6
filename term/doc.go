// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package term is a terminal drawing surface for chunk caches built on
// tcell.
//
// Batches store glyphs and line segments in world coordinates. At render
// time the camera maps them to screen space, where one unit is one terminal
// cell, and lines are rasterized with Bresenham's algorithm after being
// clipped to the screen.
package term
