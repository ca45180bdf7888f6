// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package graph generates synthetic node/edge data for the commands.
package graph

import (
	"math/rand"
	"strconv"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/spatial"
)

// Node is a point entity.
type Node struct {
	ID  string
	Pos aether.Point
}

// Edge is a segment entity joining two nodes.
type Edge struct {
	ID       string
	From, To aether.Point
}

// Graph is a generated data set.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Random returns a graph of n nodes spread uniformly over a size x size
// world and m edges between nodes at most 16 apart in generation order.
// The same seed always yields the same graph.
func Random(n, m int, size float64, seed int64) Graph {
	rng := rand.New(rand.NewSource(seed))
	g := Graph{
		Nodes: make([]Node, n),
		Edges: make([]Edge, 0, m),
	}
	for i := range g.Nodes {
		g.Nodes[i] = Node{
			ID:  "n" + strconv.Itoa(i),
			Pos: aether.Pt(rng.Float64()*size, rng.Float64()*size),
		}
	}
	if n < 2 {
		return g
	}
	for i := 0; i < m; i++ {
		a := rng.Intn(n)
		b := (a + 1 + rng.Intn(min(n-1, 16))) % n
		g.Edges = append(g.Edges, Edge{
			ID:   "e" + strconv.Itoa(i),
			From: g.Nodes[a].Pos,
			To:   g.Nodes[b].Pos,
		})
	}
	return g
}

// Bounds returns the bounding rectangle of all nodes.
func (g Graph) Bounds() aether.Rect {
	if len(g.Nodes) == 0 {
		return aether.Rect{}
	}
	r := aether.Rect{X: g.Nodes[0].Pos.X, Y: g.Nodes[0].Pos.Y}
	for _, n := range g.Nodes[1:] {
		r = r.Union(aether.Rect{X: n.Pos.X, Y: n.Pos.Y})
	}
	return r
}

// Index inserts every node and edge into grid and returns how many edges
// were truncated by the traversal limit.
func (g Graph) Index(grid *spatial.Grid, mode spatial.Coverage) (truncated int) {
	for _, n := range g.Nodes {
		grid.AddNode(n.ID, n.Pos.X, n.Pos.Y)
	}
	for _, e := range g.Edges {
		if !grid.AddEdge(e.ID, e.From.X, e.From.Y, e.To.X, e.To.Y, mode) {
			truncated++
		}
	}
	return truncated
}
