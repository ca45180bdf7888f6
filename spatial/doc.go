// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package spatial provides a uniform spatial hash grid that indexes point-
// and line-shaped entities by string id.
//
// # Overview
//
// The world is divided into square cells of a fixed size. Each populated cell
// holds the set of entity ids whose geometry overlaps it:
//
//	g, _ := spatial.NewGrid(100)
//	g.AddNode("a", 150, 150)
//	g.AddEdge("b", 0, 0, 250, 250, spatial.Precise)
//
//	visible := g.QueryRange(100, 100, 100, 100) // contains "a" and "b"
//
// # Line Coverage
//
// [Precise] coverage walks the exact ordered sequence of cells crossed by a
// segment (a DDA grid traversal). [Approximate] coverage inserts the id into
// every cell of the segment's bounding box: cheaper, with false positives
// but never false negatives. Coverage is not recorded per id, and mixing the
// two modes for the same id without an intervening [Grid.Remove] is
// unsupported.
//
// Precise traversal stops after a configurable number of cells (see
// [WithTraversalLimit]); a truncated insert logs a warning through
// [github.com/borobysh/aether.Logger] and AddEdge returns false.
//
// # Cleanup
//
// Every removal path ([Grid.Remove], [Grid.RemoveFromCell],
// [Grid.UpdateNode]) deletes cells that become empty, so the number of cell
// entries stays bounded by the cells that still hold ids.
package spatial
