// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package spatial

// DefaultTraversalLimit bounds how many cells a precise line traversal may
// visit before it gives up.
const DefaultTraversalLimit = 10000

// Option configures a Grid during creation.
type Option func(*gridOptions)

type gridOptions struct {
	traversalLimit int
}

func defaultOptions() gridOptions {
	return gridOptions{
		traversalLimit: DefaultTraversalLimit,
	}
}

// WithTraversalLimit sets the maximum number of cells a precise edge insert
// visits. Very large worlds with a small cell size may need more than the
// default. Values <= 0 make NewGrid fail with ErrInvalidTraversalLimit.
func WithTraversalLimit(n int) Option {
	return func(o *gridOptions) {
		o.traversalLimit = n
	}
}
