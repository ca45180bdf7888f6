// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/spatial"
)

// Layer is a unit of per-frame work owned by an Engine.
type Layer interface {
	// Attach is called once when the layer is added to e.
	Attach(e *Engine)

	// Update is called every frame with the ids the grid reports for the
	// camera's current view.
	Update(visible spatial.IDSet)

	// Destroy releases the layer's resources.
	Destroy()
}

// Engine owns a spatial grid and a set of named layers.
// It is not safe for concurrent use.
type Engine struct {
	camera aether.Camera
	grid   *spatial.Grid

	layers map[string]Layer
	order  []string

	frames    uint64
	destroyed bool
}

// New creates an engine for camera.
// Returns aether.ErrNilCamera for a nil camera and aether.ErrInvalidCellSize
// for an invalid WithCellSize value.
func New(camera aether.Camera, opts ...Option) (*Engine, error) {
	if camera == nil {
		return nil, aether.ErrNilCamera
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	grid := o.grid
	if grid == nil {
		var err error
		grid, err = spatial.NewGrid(o.cellSize)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}
	return &Engine{
		camera: camera,
		grid:   grid,
		layers: make(map[string]Layer),
	}, nil
}

// Camera returns the engine's camera.
func (e *Engine) Camera() aether.Camera {
	return e.camera
}

// Grid returns the shared spatial grid.
func (e *Engine) Grid() *spatial.Grid {
	return e.grid
}

// Frames returns the number of completed Update calls.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// AddLayer registers layer under id and attaches it.
func (e *Engine) AddLayer(id string, layer Layer) error {
	if e.destroyed {
		return aether.ErrDestroyed
	}
	if id == "" {
		return aether.ErrEmptyLayerID
	}
	if _, ok := e.layers[id]; ok {
		return fmt.Errorf("engine: layer %q: %w", id, aether.ErrDuplicateLayer)
	}
	e.layers[id] = layer
	e.order = append(e.order, id)
	layer.Attach(e)
	return nil
}

// Layer returns the layer registered under id.
func (e *Engine) Layer(id string) (Layer, bool) {
	l, ok := e.layers[id]
	return l, ok
}

// LayerAs returns the layer registered under id as type L.
// ok is false when no such layer exists or it has another type.
func LayerAs[L Layer](e *Engine, id string) (l L, ok bool) {
	layer, found := e.layers[id]
	if !found {
		return l, false
	}
	l, ok = layer.(L)
	return l, ok
}

// RemoveLayer destroys and unregisters the layer under id.
// It reports whether a layer was removed.
func (e *Engine) RemoveLayer(id string) bool {
	l, ok := e.layers[id]
	if !ok {
		return false
	}
	delete(e.layers, id)
	e.order = slices.DeleteFunc(e.order, func(s string) bool { return s == id })
	l.Destroy()
	return true
}

// Layers returns the registered layers in the order they were added.
func (e *Engine) Layers() []Layer {
	out := make([]Layer, len(e.order))
	for i, id := range e.order {
		out[i] = e.layers[id]
	}
	return out
}

// LayerIDs returns the registered layer ids in the order they were added.
func (e *Engine) LayerIDs() []string {
	return slices.Clone(e.order)
}

// Update runs one frame: it queries the grid with the camera's view bounds
// and forwards the result to every layer. It returns the visible id set.
// Update on a destroyed engine does nothing and returns nil.
func (e *Engine) Update() spatial.IDSet {
	if e.destroyed {
		return nil
	}
	visible := e.grid.QueryRect(e.camera.ViewBounds().Normalize())
	for _, id := range e.order {
		e.layers[id].Update(visible)
	}
	e.frames++
	aether.Logger().Debug("engine: update",
		"frame", e.frames,
		"visible", visible.Len(),
		"layers", len(e.order))
	return visible
}

// Run calls Update every interval until ctx is done, then returns ctx.Err().
// onFrame, if not nil, runs after each Update with its result.
// Run returns aether.ErrDestroyed if the engine is or becomes destroyed.
//
// Run panics if interval is not positive.
func (e *Engine) Run(ctx context.Context, interval time.Duration, onFrame func(visible spatial.IDSet)) error {
	if interval <= 0 {
		panic(fmt.Sprintf("engine: Run interval must be positive, got %v", interval))
	}
	if e.destroyed {
		return aether.ErrDestroyed
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			visible := e.Update()
			if onFrame != nil {
				onFrame(visible)
			}
			if e.destroyed {
				return aether.ErrDestroyed
			}
		}
	}
}

// Destroy destroys every layer in insertion order and clears the grid.
// It is safe to call more than once.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	for _, id := range e.order {
		e.layers[id].Destroy()
	}
	clear(e.layers)
	e.order = nil
	e.grid.Clear()
}
