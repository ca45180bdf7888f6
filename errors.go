// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package aether

import "errors"

// Sentinel errors shared by aether packages.
var (
	// ErrInvalidCellSize is returned when a cell size is zero, negative,
	// NaN or infinite.
	ErrInvalidCellSize = errors.New("aether: cell size must be a positive finite number")

	// ErrInvalidTraversalLimit is returned when a line traversal limit is not positive.
	ErrInvalidTraversalLimit = errors.New("aether: traversal limit must be positive")

	// ErrNilCamera is returned when a component that needs a camera gets nil.
	ErrNilCamera = errors.New("aether: camera is nil")

	// ErrNilContainer is returned when a chunk cache is created without a batch container.
	ErrNilContainer = errors.New("aether: batch container is nil")

	// ErrNilDrawFunc is returned when a chunk cache is created without an item draw callback.
	ErrNilDrawFunc = errors.New("aether: draw callback is nil")

	// ErrEmptyLayerID is returned when a layer is registered under an empty id.
	ErrEmptyLayerID = errors.New("aether: layer id is empty")

	// ErrDuplicateLayer is returned when a layer id is already registered.
	ErrDuplicateLayer = errors.New("aether: layer id already registered")

	// ErrDestroyed is returned by operations on a destroyed engine or canvas.
	ErrDestroyed = errors.New("aether: used after destroy")

	// ErrInvalidViewport is returned when a camera viewport is not positive.
	ErrInvalidViewport = errors.New("aether: viewport dimensions must be positive")
)

