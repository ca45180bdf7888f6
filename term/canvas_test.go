// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package term

import (
	"errors"
	"image/color"
	"testing"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/camera"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

// screenCamera maps world units 1:1 to terminal cells with the world origin
// at the top-left corner.
func screenCamera(t *testing.T, w, h int) *camera.Ortho {
	t.Helper()
	cam, err := camera.New(float64(w), float64(h))
	if err != nil {
		t.Fatalf("camera.New failed: %v", err)
	}
	cam.SetPosition(aether.Pt(float64(w)/2, float64(h)/2))
	return cam
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCanvas_RenderGlyph(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	cv := New()
	b := cv.NewBatch()
	b.DrawGlyph(aether.Pt(3.5, 4.2), 'o')
	b.DrawGlyph(aether.Pt(-1, 4), 'x')

	if err := cv.Render(s, screenCamera(t, 20, 10)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := runeAt(s, 3, 4); got != 'o' {
		t.Errorf("rune at (3,4) = %q, want 'o'", got)
	}
}

func TestCanvas_RenderHorizontalLine(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	cv := New()
	b := cv.NewBatch()
	b.SetLineRune('-')
	b.DrawLine(aether.Pt(2, 5), aether.Pt(8, 5))

	_ = cv.Render(s, screenCamera(t, 20, 10))
	for x := 2; x <= 8; x++ {
		if got := runeAt(s, x, 5); got != '-' {
			t.Errorf("rune at (%d,5) = %q, want '-'", x, got)
		}
	}
	if got := runeAt(s, 9, 5); got == '-' {
		t.Error("line overran its end point")
	}
}

func TestCanvas_RenderClipsLongLine(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	cv := New()
	b := cv.NewBatch()
	b.SetLineRune('|')
	b.DrawLine(aether.Pt(4, -1e9), aether.Pt(4, 1e9))

	_ = cv.Render(s, screenCamera(t, 20, 10))
	for y := 0; y < 10; y++ {
		if got := runeAt(s, 4, y); got != '|' {
			t.Errorf("rune at (4,%d) = %q, want '|'", y, got)
		}
	}
}

func TestCanvas_RenderSkipsHidden(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	cv := New()
	b := cv.NewBatch()
	b.DrawGlyph(aether.Pt(1, 1), '@')
	b.SetVisible(false)

	_ = cv.Render(s, screenCamera(t, 20, 10))
	if got := runeAt(s, 1, 1); got == '@' {
		t.Error("hidden batch was rendered")
	}
}

func TestCanvas_RenderAppliesStyle(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	cv := New()
	b := cv.NewBatch()
	b.SetLineStyle(1, color.NRGBA{R: 255, A: 255})
	b.DrawGlyph(aether.Pt(2, 2), '*')

	_ = cv.Render(s, screenCamera(t, 20, 10))
	_, _, style, _ := s.GetContent(2, 2)
	if style != tcell.StyleDefault.Foreground(tcell.FromImageColor(color.NRGBA{R: 255, A: 255})) {
		t.Errorf("style = %v, want red foreground", style)
	}
}

func TestBatch_SetLineStyleWidth(t *testing.T) {
	b := New().NewBatch()
	b.SetLineStyle(3, color.White)
	b.DrawLine(aether.Pt(0, 0), aether.Pt(1, 1))
	if b.Lines()[0].Rune != '█' {
		t.Errorf("thick line rune = %q, want block", b.Lines()[0].Rune)
	}
	b.Clear()
	if len(b.Lines()) != 0 || b.lineRune != DefaultLineRune {
		t.Error("Clear should drop primitives and reset the line rune")
	}
}

func TestCanvas_DestroyIdempotent(t *testing.T) {
	cv := New()
	b := cv.NewBatch()
	cv.Destroy()
	cv.Destroy()
	if !b.Destroyed() || cv.Len() != 0 {
		t.Error("Destroy should destroy and detach children")
	}
	b.DrawGlyph(aether.Pt(0, 0), 'x')
	if len(b.Glyphs()) != 0 {
		t.Error("destroyed batch accepted a glyph")
	}
	if err := cv.Render(newSimScreen(t, 5, 5), screenCamera(t, 5, 5)); !errors.Is(err, aether.ErrDestroyed) {
		t.Errorf("Render after Destroy = %v, want ErrDestroyed", err)
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name   string
		a, b   aether.Point
		ok     bool
		wa, wb aether.Point
	}{
		{"inside", aether.Pt(1, 1), aether.Pt(5, 5), true, aether.Pt(1, 1), aether.Pt(5, 5)},
		{"outside", aether.Pt(-5, -5), aether.Pt(-1, -1), false, aether.Point{}, aether.Point{}},
		{"crossing", aether.Pt(-10, 5), aether.Pt(30, 5), true, aether.Pt(0, 5), aether.Pt(20, 5)},
		{"parallel outside", aether.Pt(-3, 1), aether.Pt(-3, 8), false, aether.Point{}, aether.Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := clipSegment(tt.a, tt.b, 20, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (a != tt.wa || b != tt.wb) {
				t.Errorf("clipSegment = %v, %v, want %v, %v", a, b, tt.wa, tt.wb)
			}
		})
	}
}

func TestBresenham(t *testing.T) {
	var pts [][2]int
	bresenham(0, 0, 3, 2, func(x, y int) { pts = append(pts, [2]int{x, y}) })
	if len(pts) != 4 || pts[0] != [2]int{0, 0} || pts[3] != [2]int{3, 2} {
		t.Errorf("bresenham = %v, want 4 points from (0,0) to (3,2)", pts)
	}
}
