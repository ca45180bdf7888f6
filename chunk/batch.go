// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package chunk

// Batch is an opaque drawable handle holding the rendered output of one cell.
//
// The cache never inspects drawn content; it only clears, shows, hides and
// destroys batches.
type Batch interface {
	// Clear drops all drawn content. The batch stays usable.
	Clear()

	// SetVisible shows or hides the batch without touching its content.
	SetVisible(visible bool)

	// Visible reports the current visibility flag.
	Visible() bool

	// Destroy releases the batch. It is called after the batch has been
	// removed from its container and is never followed by other calls.
	Destroy()
}

// Container creates batches and owns them as children.
type Container[B Batch] interface {
	// NewBatch creates an empty, visible batch attached as a child.
	NewBatch() B

	// RemoveChild detaches b. It does not destroy it.
	RemoveChild(b B)

	// Destroy releases the container and any child content it still holds.
	Destroy()
}

// DrawFunc draws one item into a batch.
type DrawFunc[T any, B Batch] func(b B, item T)

// SetupFunc prepares a freshly cleared batch before its items are drawn,
// typically by configuring a default line style.
type SetupFunc[B Batch] func(b B)
