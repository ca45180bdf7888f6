// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"github.com/borobysh/aether/engine"
	"github.com/borobysh/aether/spatial"
)

// Base implements engine.Layer with no-op Update and Destroy. Embed it and
// override what the layer needs.
type Base struct {
	engine *engine.Engine
}

var _ engine.Layer = (*Base)(nil)

// Attach records the owning engine.
func (b *Base) Attach(e *engine.Engine) {
	b.engine = e
}

// Engine returns the owning engine, or nil before Attach.
func (b *Base) Engine() *engine.Engine {
	return b.engine
}

// Update does nothing.
func (b *Base) Update(spatial.IDSet) {}

// Destroy does nothing.
func (b *Base) Destroy() {}
