// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command aetherdemo renders a synthetic graph through the aether engine.
//
// Edges are cached per cell on a gg canvas, nodes are drawn as sprites, and
// the camera pans across the world for a number of frames. The last frame
// is written as PNG, optionally with a scaled thumbnail.
//
// Usage:
//
//	aetherdemo -nodes 5000 -edges 8000 -frames 60 -output frame.png
//	aetherdemo -profile cpu
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/camera"
	"github.com/borobysh/aether/canvas"
	"github.com/borobysh/aether/engine"
	"github.com/borobysh/aether/internal/graph"
	"github.com/borobysh/aether/layers"
	"github.com/borobysh/aether/spatial"
	"github.com/gogpu/gg"
	"github.com/pkg/profile"
	"golang.org/x/image/draw"
)

type config struct {
	nodes, edges  int
	world         float64
	width, height int
	frames        int
	seed          int64
	output        string
	thumb         string
	thumbWidth    int
	approximate   bool
	verbose       bool
}

func main() {
	var (
		cfg         config
		profileMode string
	)
	flag.IntVar(&cfg.nodes, "nodes", 2000, "number of nodes")
	flag.IntVar(&cfg.edges, "edges", 4000, "number of edges")
	flag.Float64Var(&cfg.world, "world", 20000, "world size in units")
	flag.IntVar(&cfg.width, "width", 1280, "image width")
	flag.IntVar(&cfg.height, "height", 720, "image height")
	flag.IntVar(&cfg.frames, "frames", 30, "frames to simulate")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed")
	flag.StringVar(&cfg.output, "output", "aether.png", "output file")
	flag.StringVar(&cfg.thumb, "thumb", "", "optional thumbnail output file")
	flag.IntVar(&cfg.thumbWidth, "thumb-width", 320, "thumbnail width")
	flag.BoolVar(&cfg.approximate, "approximate", false, "index edges by bounding box")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.StringVar(&profileMode, "profile", "", "profile mode: cpu or mem")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	aether.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q", profileMode)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	logger := aether.Logger()

	cam, err := camera.New(float64(cfg.width), float64(cfg.height))
	if err != nil {
		return err
	}
	eng, err := engine.New(cam)
	if err != nil {
		return err
	}
	defer eng.Destroy()

	edgeCanvas := canvas.New(cfg.width, cfg.height)
	edgeLayer, err := layers.NewCellLayer(edgeCanvas, drawEdge)
	if err != nil {
		return err
	}
	nodeCanvas := canvas.New(cfg.width, cfg.height)
	nodeLayer, err := layers.NewSpriteLayer(nodeCanvas, drawNode)
	if err != nil {
		return err
	}
	if err := eng.AddLayer("edges", edgeLayer); err != nil {
		return err
	}
	if err := eng.AddLayer("nodes", nodeLayer); err != nil {
		return err
	}

	start := time.Now()
	g := graph.Random(cfg.nodes, cfg.edges, cfg.world, cfg.seed)
	mode := spatial.Precise
	if cfg.approximate {
		mode = spatial.Approximate
	}
	truncated := g.Index(eng.Grid(), mode)
	edgeLayer.SetData(g.Edges, func(e graph.Edge) (aether.Point, aether.Point) { return e.From, e.To })
	nodeLayer.SetSprites(sprites(g))
	logger.Info("indexed graph",
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"mode", mode,
		"truncated", truncated,
		"elapsed", time.Since(start))

	// Start zoomed in on the left quarter of the world and pan right.
	cam.FitBounds(aether.Rect{X: 0, Y: cfg.world * 3 / 8, Width: cfg.world / 4, Height: cfg.world / 4})
	step := cfg.world * 3 / 4 / float64(max(cfg.frames, 1)) * cam.Zoom()

	dc := gg.NewContext(cfg.width, cfg.height)
	defer func() { _ = dc.Close() }()

	var (
		visible  spatial.IDSet
		renderMs float64
	)
	for i := 0; i < cfg.frames; i++ {
		cam.Pan(step, 0)
		visible = eng.Update()

		t := time.Now()
		if err := renderFrame(dc, cam, edgeCanvas, nodeCanvas); err != nil {
			return err
		}
		renderMs += float64(time.Since(t).Microseconds()) / 1000
	}

	gs := eng.Grid().Stats()
	cs := edgeLayer.Stats()
	logger.Info("rendered frames",
		"frames", cfg.frames,
		"visible", visible.Len(),
		"sprites", nodeLayer.Shown(),
		"avg_render_ms", renderMs/float64(max(cfg.frames, 1)),
		"grid_cells", gs.CellCount,
		"grid_avg_per_cell", gs.AvgPerCell,
		"cache_batches", cs.Batches,
		"cache_visible", cs.Visible)

	if err := dc.SavePNG(cfg.output); err != nil {
		return fmt.Errorf("save %s: %w", cfg.output, err)
	}
	logger.Info("saved frame", "path", cfg.output, "width", cfg.width, "height", cfg.height)

	if cfg.thumb != "" {
		if err := saveThumbnail(dc.Image(), cfg.thumb, cfg.thumbWidth); err != nil {
			return err
		}
		logger.Info("saved thumbnail", "path", cfg.thumb)
	}
	return nil
}

var (
	background = gg.Hex("#101418")
	nodeColor  = gg.Hex("#4fa3ff")
)

// drawEdge relies on layers.DefaultSetup for the stroke style.

func drawEdge(b *canvas.Batch, e graph.Edge) {
	r := b.Recorder()
	r.DrawLine(e.From.X, e.From.Y, e.To.X, e.To.Y)
	r.Stroke()
}

func drawNode(b *canvas.Batch, _ string, s layers.Sprite) {
	r := b.Recorder()
	r.SetFillBrush(gg.Solid(gg.FromColor(s.Color)))
	r.DrawCircle(s.Pos.X, s.Pos.Y, s.Radius)
	r.Fill()
}

func sprites(g graph.Graph) map[string]layers.Sprite {
	out := make(map[string]layers.Sprite, len(g.Nodes))
	c := nodeColor.Color()
	for _, n := range g.Nodes {
		out[n.ID] = layers.Sprite{Pos: n.Pos, Radius: 12, Color: c}
	}
	return out
}

func renderFrame(dc *gg.Context, cam *camera.Ortho, surfaces ...*canvas.Canvas) error {
	dc.ClearWithColor(background)
	view := cam.Matrix()
	for _, s := range surfaces {
		if err := s.Render(dc, view); err != nil {
			return err
		}
	}
	return nil
}

func saveThumbnail(src image.Image, path string, width int) error {
	b := src.Bounds()
	if width <= 0 || b.Dx() == 0 {
		return fmt.Errorf("thumbnail width %d: must be positive", width)
	}
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
