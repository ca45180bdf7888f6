// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command aetherview browses a synthetic graph in the terminal.
//
// Keys: arrows or hjkl pan, + and - zoom around the screen center, f fits
// the whole graph, q or Esc quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/camera"
	"github.com/borobysh/aether/engine"
	"github.com/borobysh/aether/internal/graph"
	"github.com/borobysh/aether/layers"
	"github.com/borobysh/aether/spatial"
	"github.com/borobysh/aether/term"
	"github.com/gdamore/tcell/v2"
)

const (
	panStep    = 8
	zoomFactor = 1.25
	maxFPS     = 240
)

var nodeColor = color.NRGBA{R: 0x87, G: 0xce, B: 0xfa, A: 0xff}

func main() {
	var (
		nodes   = flag.Int("nodes", 500, "number of nodes")
		edges   = flag.Int("edges", 800, "number of edges")
		world   = flag.Float64("world", 5000, "world size in units")
		seed    = flag.Int64("seed", 1, "random seed")
		fps     = flag.Int("fps", 30, "frames per second, at most 240")
		logPath = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aetherview: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		aether.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(graph.Random(*nodes, *edges, *world, *seed), min(max(*fps, 1), maxFPS)); err != nil {
		fmt.Fprintf(os.Stderr, "aetherview: %v\n", err)
		os.Exit(1)
	}
}

type viewer struct {
	screen tcell.Screen
	cam    *camera.Ortho
	eng    *engine.Engine
	bounds aether.Rect
	edges  *term.Canvas
	nodes  *term.Canvas
	events chan tcell.Event
	cancel context.CancelFunc
}

func run(g graph.Graph, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	cam, err := camera.New(float64(w), float64(max(h-1, 1)))
	if err != nil {
		return err
	}
	eng, err := engine.New(cam)
	if err != nil {
		return err
	}
	defer eng.Destroy()

	v := &viewer{
		screen: screen,
		cam:    cam,
		eng:    eng,
		bounds: g.Bounds(),
		edges:  term.New(),
		nodes:  term.New(),
		events: make(chan tcell.Event, 64),
	}

	edgeLayer, err := layers.NewCellLayer(v.edges, func(b *term.Batch, e graph.Edge) {
		b.DrawLine(e.From, e.To)
	})
	if err != nil {
		return err
	}
	nodeLayer, err := layers.NewSpriteLayer(v.nodes, func(b *term.Batch, _ string, s layers.Sprite) {
		b.SetStyle(tcell.StyleDefault.Foreground(tcell.FromImageColor(s.Color)))
		b.DrawGlyph(s.Pos, 'o')
	})
	if err != nil {
		return err
	}
	if err := eng.AddLayer("edges", edgeLayer); err != nil {
		return err
	}
	if err := eng.AddLayer("nodes", nodeLayer); err != nil {
		return err
	}

	g.Index(eng.Grid(), spatial.Precise)
	edgeLayer.SetData(g.Edges, func(e graph.Edge) (aether.Point, aether.Point) { return e.From, e.To })
	nodeLayer.SetSprites(sprites(g))
	cam.FitBounds(v.bounds)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			v.events <- ev
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	v.cancel = cancel

	err = eng.Run(ctx, time.Second/time.Duration(fps), v.frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func sprites(g graph.Graph) map[string]layers.Sprite {
	out := make(map[string]layers.Sprite, len(g.Nodes))
	for _, n := range g.Nodes {
		out[n.ID] = layers.Sprite{Pos: n.Pos, Radius: 1, Color: nodeColor}
	}
	return out
}

// frame applies pending input and redraws the screen. Input changes the
// camera, so its effect shows on the next engine update.
func (v *viewer) frame(visible spatial.IDSet) {
	for drained := false; !drained; {
		select {
		case ev := <-v.events:
			v.handle(ev)
		default:
			drained = true
		}
	}

	v.screen.Clear()
	for _, c := range []*term.Canvas{v.edges, v.nodes} {
		if err := c.Render(v.screen, v.cam); err != nil {
			aether.Logger().Error("aetherview: render", "err", err)
		}
	}
	v.status(visible)
	v.screen.Show()
}

func (v *viewer) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			v.cancel()
		case tcell.KeyLeft:
			v.cam.Pan(-panStep, 0)
		case tcell.KeyRight:
			v.cam.Pan(panStep, 0)
		case tcell.KeyUp:
			v.cam.Pan(0, -panStep)
		case tcell.KeyDown:
			v.cam.Pan(0, panStep)
		case tcell.KeyRune:
			v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
		w, h := ev.Size()
		v.cam.Resize(float64(w), float64(max(h-1, 1)))
	}
}

func (v *viewer) handleRune(r rune) {
	w, h := v.cam.Viewport()
	center := aether.Pt(w/2, h/2)
	switch r {
	case 'q':
		v.cancel()
	case 'h':
		v.cam.Pan(-panStep, 0)
	case 'l':
		v.cam.Pan(panStep, 0)
	case 'k':
		v.cam.Pan(0, -panStep)
	case 'j':
		v.cam.Pan(0, panStep)
	case '+', '=':
		v.cam.ZoomAt(center, zoomFactor)
	case '-':
		v.cam.ZoomAt(center, 1/zoomFactor)
	case 'f':
		v.cam.FitBounds(v.bounds)
	}
}

func (v *viewer) status(visible spatial.IDSet) {
	w, h := v.screen.Size()
	s := v.eng.Grid().Stats()
	line := fmt.Sprintf(" visible %d | cells %d | avg %.2f | zoom %.4f | frame %d ",
		visible.Len(), s.CellCount, s.AvgPerCell, v.cam.Zoom(), v.eng.Frames())
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		v.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, style)
	}
}
