// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package chunk

// Option configures a Cache during creation.
type Option[B Batch] func(*cacheOptions[B])

type cacheOptions[B Batch] struct {
	setup SetupFunc[B]
}

// WithSetup sets the callback run once per cell rebuild, after the batch is
// cleared and before any item is drawn.
func WithSetup[B Batch](fn SetupFunc[B]) Option[B] {
	return func(o *cacheOptions[B]) {
		o.setup = fn
	}
}
