// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package chunk

import (
	"errors"
	"math"
	"testing"

	"github.com/borobysh/aether"
)

// fakeBatch records draw calls as strings.
type fakeBatch struct {
	id        int
	ops       []string
	visible   bool
	clears    int
	destroyed bool
}

func (b *fakeBatch) Clear()            { b.ops = nil; b.clears++ }
func (b *fakeBatch) SetVisible(v bool) { b.visible = v }
func (b *fakeBatch) Visible() bool     { return b.visible }
func (b *fakeBatch) Destroy()          { b.destroyed = true }
func (b *fakeBatch) record(op string)  { b.ops = append(b.ops, op) }

type fakeContainer struct {
	next      int
	children  []*fakeBatch
	created   int
	destroyed int
}

func (c *fakeContainer) NewBatch() *fakeBatch {
	c.next++
	c.created++
	b := &fakeBatch{id: c.next, visible: true}
	c.children = append(c.children, b)
	return b
}

func (c *fakeContainer) RemoveChild(b *fakeBatch) {
	for i, child := range c.children {
		if child == b {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

func (c *fakeContainer) Destroy() { c.destroyed++ }

type item struct {
	name       string
	start, end aether.Point
}

func newTestCache(t *testing.T, size float64, opts ...Option[*fakeBatch]) (*Cache[item, *fakeBatch], *fakeContainer) {
	t.Helper()
	fc := &fakeContainer{}
	c, err := New(size, fc, func(b *fakeBatch, it item) { b.record(it.name) }, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, fc
}

func index(c *Cache[item, *fakeBatch], items ...item) {
	for _, it := range items {
		c.IndexElement(it, it.start, it.end)
	}
}

func seg(name string, x1, y1, x2, y2 float64) item {
	return item{name: name, start: aether.Pt(x1, y1), end: aether.Pt(x2, y2)}
}

func mustBatch(t *testing.T, c *Cache[item, *fakeBatch], x, y int32) *fakeBatch {
	t.Helper()
	b, ok := c.Batch(aether.Cell{X: x, Y: y})
	if !ok {
		t.Fatalf("no batch for cell (%d,%d)", x, y)
	}
	return b
}

func equalOps(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// Construction
// =============================================================================

func TestNew_Validation(t *testing.T) {
	draw := func(*fakeBatch, item) {}
	tests := []struct {
		name      string
		size      float64
		container Container[*fakeBatch]
		draw      DrawFunc[item, *fakeBatch]
		want      error
	}{
		{"zero size", 0, &fakeContainer{}, draw, aether.ErrInvalidCellSize},
		{"infinite size", math.Inf(1), &fakeContainer{}, draw, aether.ErrInvalidCellSize},
		{"nil container", 10, nil, draw, aether.ErrNilContainer},
		{"nil draw", 10, &fakeContainer{}, nil, aether.ErrNilDrawFunc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.size, tt.container, tt.draw)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// =============================================================================
// Indexing and redraw
// =============================================================================

func TestCache_IndexElementSpansBoundingBox(t *testing.T) {
	c, _ := newTestCache(t, 100)
	index(c, seg("e", 250, 50, 50, 150))

	cells := c.Cells()
	want := []aether.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	if len(cells) != len(want) {
		t.Fatalf("Cells() = %v, want %d cells", cells, len(want))
	}
	for _, w := range want {
		if !c.IsDirty(w) {
			t.Errorf("cell %v should be dirty", w)
		}
		if items := c.Items(w); len(items) != 1 || items[0].name != "e" {
			t.Errorf("Items(%v) = %v", w, items)
		}
	}
}

func TestCache_RedrawIncremental(t *testing.T) {
	c, fc := newTestCache(t, 100)
	index(c, seg("a", 10, 10, 20, 20), seg("b", 30, 30, 150, 40), seg("c", 50, 50, 60, 60))

	c.Redraw(false)

	if s := c.Stats(); s.Dirty != 0 || s.Batches != 2 || s.Cells != 2 {
		t.Fatalf("Stats() = %+v, want 2 cells, 2 batches, no dirty", s)
	}
	if fc.created != 2 || len(fc.children) != 2 {
		t.Errorf("container created %d, holds %d, want 2", fc.created, len(fc.children))
	}
	if got := mustBatch(t, c, 0, 0).ops; !equalOps(got, []string{"a", "b", "c"}) {
		t.Errorf("cell (0,0) ops = %v, want index order a b c", got)
	}
	if got := mustBatch(t, c, 1, 0).ops; !equalOps(got, []string{"b"}) {
		t.Errorf("cell (1,0) ops = %v, want [b]", got)
	}

	// A second incremental redraw does nothing.
	b := mustBatch(t, c, 0, 0)
	clears := b.clears
	c.Redraw(false)
	if b.clears != clears {
		t.Error("clean cells were rebuilt")
	}
}

func TestCache_RedrawRebuildsOnlyDirtyCells(t *testing.T) {
	c, _ := newTestCache(t, 100)
	index(c, seg("a", 10, 10, 10, 10), seg("b", 110, 10, 110, 10))
	c.Redraw(false)

	a, b := mustBatch(t, c, 0, 0), mustBatch(t, c, 1, 0)
	aClears, bClears := a.clears, b.clears

	c.MarkCellDirty(150, 50)
	c.Redraw(false)
	if a.clears != aClears {
		t.Error("clean cell (0,0) was rebuilt")
	}
	if b.clears != bClears+1 {
		t.Error("dirty cell (1,0) was not rebuilt")
	}
	if mustBatch(t, c, 1, 0) != b {
		t.Error("rebuild should reuse the existing batch")
	}
}

func TestCache_RedrawDisposesEmptiedCell(t *testing.T) {
	c, fc := newTestCache(t, 100)
	index(c, seg("a", 10, 10, 10, 10), seg("b", 110, 10, 110, 10))
	c.Redraw(false)
	b := mustBatch(t, c, 1, 0)

	c.ClearCell(aether.Cell{X: 1, Y: 0})
	c.Redraw(false)

	if _, ok := c.Batch(aether.Cell{X: 1, Y: 0}); ok {
		t.Error("batch of emptied cell still present")
	}
	if !b.destroyed {
		t.Error("batch of emptied cell not destroyed")
	}
	if len(fc.children) != 1 {
		t.Errorf("container holds %d children, want 1", len(fc.children))
	}
	if c.Stats().Dirty != 0 {
		t.Error("dirty set not cleared")
	}
}

func TestCache_RedrawDirtyCellWithoutBatch(t *testing.T) {
	c, fc := newTestCache(t, 100)
	c.MarkCellDirty(5000, 5000)
	c.Redraw(false)
	if fc.created != 0 || c.Stats() != (Stats{}) {
		t.Errorf("dirty empty cell produced state: %+v", c.Stats())
	}
}

func TestCache_RedrawForce(t *testing.T) {
	c, _ := newTestCache(t, 100)
	index(c, seg("a", 10, 10, 10, 10), seg("b", 110, 10, 110, 10))
	c.Redraw(false)
	a, b := mustBatch(t, c, 0, 0), mustBatch(t, c, 1, 0)
	aClears, bClears := a.clears, b.clears

	c.Redraw(true)
	if a.clears != aClears+1 || b.clears != bClears+1 {
		t.Error("forced redraw should rebuild every cell")
	}

	// Orphaned batch: items dropped, dirty mark lost.
	delete(c.items, aether.Cell{X: 1, Y: 0}.Key())
	c.Redraw(true)
	if _, ok := c.Batch(aether.Cell{X: 1, Y: 0}); ok || !b.destroyed {
		t.Error("forced redraw should dispose batches of cells without items")
	}
}

func TestCache_Setup(t *testing.T) {
	c, _ := newTestCache(t, 100, WithSetup(func(b *fakeBatch) { b.record("setup") }))
	index(c, seg("a", 1, 1, 1, 1), seg("b", 2, 2, 2, 2))
	c.Redraw(false)
	if got := mustBatch(t, c, 0, 0).ops; !equalOps(got, []string{"setup", "a", "b"}) {
		t.Errorf("ops = %v, want setup once before items", got)
	}
	c.Redraw(true)
	if got := mustBatch(t, c, 0, 0).ops; !equalOps(got, []string{"setup", "a", "b"}) {
		t.Errorf("ops after rebuild = %v, want content rebuilt from scratch", got)
	}
}

func TestCache_MarkAllDirty(t *testing.T) {
	c, _ := newTestCache(t, 100)
	index(c, seg("a", 1, 1, 301, 1))
	c.Redraw(false)
	c.MarkAllDirty()
	if c.Stats().Dirty != 4 {
		t.Errorf("Dirty = %d, want 4", c.Stats().Dirty)
	}
}

// =============================================================================
// Culling
// =============================================================================

func TestCache_Cull(t *testing.T) {
	c, _ := newTestCache(t, 100)
	for x := -5; x <= 5; x++ {
		fx := float64(x)*100 + 50
		index(c, seg("p", fx, 50, fx, 50))
	}
	c.Redraw(false)

	// View covers cells 0..1; slack shows -1..2.
	c.Cull(aether.Rect{X: 10, Y: 10, Width: 150, Height: 50})
	for x := int32(-5); x <= 5; x++ {
		want := x >= -1 && x <= 2
		if got := mustBatch(t, c, x, 0).Visible(); got != want {
			t.Errorf("cell (%d,0) visible = %v, want %v", x, got, want)
		}
	}
	if s := c.Stats(); s.Visible != 4 || s.Batches != 11 {
		t.Errorf("Stats() = %+v, want 4 visible of 11", s)
	}

	// Hidden batches keep their content and come back without a rebuild.
	far := mustBatch(t, c, 5, 0)
	clears := far.clears
	c.Cull(aether.Rect{X: 400, Y: 0, Width: 100, Height: 100})
	if !far.Visible() || far.clears != clears || len(far.ops) != 1 {
		t.Error("scrolling back should show the cached batch unchanged")
	}
}

func TestCache_CullVerticalSlack(t *testing.T) {
	c, _ := newTestCache(t, 10)
	index(c, seg("p", 5, 35, 5, 35))
	c.Redraw(false)
	c.Cull(aether.Rect{X: 0, Y: 0, Width: 10, Height: 20})
	if !mustBatch(t, c, 0, 3).Visible() {
		t.Error("cell one row below the view should stay visible")
	}
	c.Cull(aether.Rect{X: 0, Y: 0, Width: 10, Height: 5})
	if mustBatch(t, c, 0, 3).Visible() {
		t.Error("cell two rows below the view should be hidden")
	}
}

// =============================================================================
// Removal and teardown
// =============================================================================

func TestCache_RemoveFunc(t *testing.T) {
	c, _ := newTestCache(t, 100)
	index(c, seg("keep", 1, 1, 1, 1), seg("drop", 1, 1, 150, 1), seg("drop", 150, 1, 150, 1))
	c.Redraw(false)

	n := c.RemoveFunc(func(it item) bool { return it.name == "drop" })
	if n != 3 {
		t.Errorf("RemoveFunc() = %d, want 3 references", n)
	}
	if got := c.Cells(); len(got) != 1 || got[0] != (aether.Cell{}) {
		t.Errorf("Cells() = %v, want only (0,0)", got)
	}
	c.Redraw(false)
	if _, ok := c.Batch(aether.Cell{X: 1, Y: 0}); ok {
		t.Error("emptied cell kept its batch")
	}
	if got := mustBatch(t, c, 0, 0).ops; !equalOps(got, []string{"keep"}) {
		t.Errorf("ops = %v, want [keep]", got)
	}
}

func TestCache_ItemsReturnsCopy(t *testing.T) {
	c, _ := newTestCache(t, 100)
	index(c, seg("a", 1, 1, 1, 1))
	got := c.Items(aether.Cell{})
	got[0].name = "mutated"
	if c.Items(aether.Cell{})[0].name != "a" {
		t.Error("Items() aliases internal state")
	}
}

func TestCache_ClearAllGraphics(t *testing.T) {
	c, _ := newTestCache(t, 100)
	index(c, seg("a", 1, 1, 1, 1))
	c.Redraw(false)
	b := mustBatch(t, c, 0, 0)

	c.ClearAllGraphics()
	if len(b.ops) != 0 || b.destroyed {
		t.Error("ClearAllGraphics should clear content and keep the batch")
	}
	c.Redraw(false)
	if !equalOps(b.ops, []string{"a"}) {
		t.Errorf("ops after redraw = %v, want [a]", b.ops)
	}
}

func TestCache_ClearIndexing(t *testing.T) {
	c, fc := newTestCache(t, 100)
	index(c, seg("a", 1, 1, 250, 1))
	c.Redraw(false)
	batches := append([]*fakeBatch(nil), fc.children...)

	c.ClearIndexing()
	if c.Stats() != (Stats{}) || len(fc.children) != 0 {
		t.Errorf("state after ClearIndexing: %+v, %d children", c.Stats(), len(fc.children))
	}
	for _, b := range batches {
		if !b.destroyed {
			t.Error("batch not destroyed")
		}
	}
	if fc.destroyed != 0 {
		t.Error("ClearIndexing must not destroy the container")
	}

	index(c, seg("b", 1, 1, 1, 1))
	c.Redraw(false)
	if c.Stats().Batches != 1 {
		t.Error("cache unusable after ClearIndexing")
	}
}

func TestCache_DestroyIdempotent(t *testing.T) {
	c, fc := newTestCache(t, 100)
	index(c, seg("a", 1, 1, 1, 1))
	c.Redraw(false)
	b := mustBatch(t, c, 0, 0)

	c.Destroy()
	c.Destroy()

	if fc.destroyed != 1 {
		t.Errorf("container destroyed %d times, want 1", fc.destroyed)
	}
	if !b.destroyed || !c.Destroyed() {
		t.Error("batch or cache not destroyed")
	}

	// Inert afterwards.
	index(c, seg("b", 1, 1, 1, 1))
	c.MarkAllDirty()
	c.Redraw(true)
	c.Cull(aether.Rect{Width: 100, Height: 100})
	if c.Stats() != (Stats{}) || fc.created != 1 {
		t.Error("destroyed cache accepted new work")
	}
}

func BenchmarkCache_RedrawDirty(b *testing.B) {
	fc := &fakeContainer{}
	c, _ := New(256, fc, func(*fakeBatch, item) {})
	for i := 0; i < 10000; i++ {
		x := float64(i%100) * 40
		y := float64(i/100) * 40
		c.IndexElement(seg("e", x, y, x+30, y+30), aether.Pt(x, y), aether.Pt(x+30, y+30))
	}
	c.Redraw(true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.MarkCellDirty(float64(i%16)*256, 0)
		c.Redraw(false)
	}
}
