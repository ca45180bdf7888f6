// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image/color"

	"github.com/borobysh/aether"
	"github.com/borobysh/aether/chunk"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Batch is a recorded drawing owned by a Canvas.
type Batch struct {
	width, height int
	rec           *recording.Recorder

	visible   bool
	destroyed bool
}

var _ chunk.Batch = (*Batch)(nil)

func newBatch(width, height int) *Batch {
	return &Batch{
		width:   width,
		height:  height,
		rec:     recording.NewRecorder(width, height),
		visible: true,
	}
}

// Recorder returns the recorder receiving the batch's drawing commands.
// It returns nil after Destroy.
func (b *Batch) Recorder() *recording.Recorder {
	return b.rec
}

// Len returns the number of recorded commands.
func (b *Batch) Len() int {
	if b.rec == nil {
		return 0
	}
	return len(b.rec.FinishRecording().Commands())
}

// Clear drops every recorded command and resets the drawing state.
func (b *Batch) Clear() {
	if b.destroyed {
		return
	}
	b.rec = recording.NewRecorder(b.width, b.height)
}

// SetVisible shows or hides the batch.
func (b *Batch) SetVisible(visible bool) {
	b.visible = visible
}

// Visible reports whether the batch is rendered.
func (b *Batch) Visible() bool {
	return b.visible
}

// Destroyed reports whether Destroy has been called.
func (b *Batch) Destroyed() bool {
	return b.destroyed
}

// Destroy releases the recorded commands. A destroyed batch renders nothing.
func (b *Batch) Destroy() {
	b.destroyed = true
	b.visible = false
	b.rec = nil
}

// SetLineStyle sets the stroke width in pixels and the stroke color.
func (b *Batch) SetLineStyle(width float64, c color.Color) {
	if b.rec == nil {
		return
	}
	b.rec.SetLineWidth(width)
	b.rec.SetStrokeBrush(gg.Solid(gg.FromColor(c)))
}

// Render replays the batch onto dc with view as the world to screen
// transform. Hidden batches are skipped.
func (b *Batch) Render(dc *gg.Context, view gg.Matrix) error {
	if b.destroyed {
		return aether.ErrDestroyed
	}
	if !b.visible {
		return nil
	}
	return b.rec.FinishRecording().Playback(newReplayer(dc, view))
}
