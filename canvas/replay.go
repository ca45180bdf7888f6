// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// replayer is a recording.Backend drawing onto an existing gg.Context.
//
// Recorded paths are in world coordinates because the recorder bakes its
// own transform into them; the replayer maps them to the screen with view.
type replayer struct {
	dc   *gg.Context
	view gg.Matrix
}

var _ recording.Backend = (*replayer)(nil)

func newReplayer(dc *gg.Context, view gg.Matrix) *replayer {
	return &replayer{dc: dc, view: view}
}

// Begin saves the context state. The recording size is ignored: the
// target context is already sized.
func (r *replayer) Begin(_, _ int) error {
	r.dc.Push()
	return nil
}

// End restores the context state saved by Begin.
func (r *replayer) End() error {
	r.dc.Pop()
	return nil
}

func (r *replayer) Save() {
	r.dc.Push()
}

func (r *replayer) Restore() {
	r.dc.Pop()
}

// SetTransform is a no-op: recorded geometry already carries the
// recorder's transform.
func (r *replayer) SetTransform(recording.Matrix) {}

func (r *replayer) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	r.dc.SetFillRule(convertFillRule(rule))
	r.setPath(path)
	r.dc.Clip()
}

func (r *replayer) ClearClip() {
	r.dc.ResetClip()
}

func (r *replayer) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil {
		return
	}
	r.applyBrush(brush, true)
	r.dc.SetFillRule(convertFillRule(rule))
	r.setPath(path)
	_ = r.dc.Fill()
}

func (r *replayer) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil {
		return
	}
	r.applyBrush(brush, false)
	r.applyStroke(stroke)
	r.setPath(path)
	// Points are already in screen space; identity keeps the width in pixels.
	r.dc.Identity()
	_ = r.dc.Stroke()
}

func (r *replayer) FillRect(rect recording.Rect, brush recording.Brush) {
	r.applyBrush(brush, true)
	r.dc.SetTransform(r.view)
	r.dc.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	_ = r.dc.Fill()
}

// DrawImage maps dst through the view and draws img scaled into it.
// The view is assumed to have no rotation.
func (r *replayer) DrawImage(img image.Image, src, dst recording.Rect, opts recording.ImageOptions) {
	if img == nil {
		return
	}
	topLeft := r.view.TransformPoint(gg.Pt(dst.MinX, dst.MinY))
	bottomRight := r.view.TransformPoint(gg.Pt(dst.MaxX, dst.MaxY))

	ggOpts := gg.DrawImageOptions{
		X:         topLeft.X,
		Y:         topLeft.Y,
		DstWidth:  bottomRight.X - topLeft.X,
		DstHeight: bottomRight.Y - topLeft.Y,
		Opacity:   opts.Alpha,
	}
	if src.Width() > 0 && src.Height() > 0 {
		sr := image.Rect(int(src.MinX), int(src.MinY), int(src.MaxX), int(src.MaxY))
		ggOpts.SrcRect = &sr
	}

	r.dc.Push()
	defer r.dc.Pop()
	r.dc.Identity()
	r.dc.DrawImageEx(gg.ImageBufFromImage(img), ggOpts)
}

// DrawText is a no-op; cached layers carry vector geometry only.
func (r *replayer) DrawText(string, float64, float64, text.Face, recording.Brush) {}

// setPath replaces the context path with path mapped through the view.
func (r *replayer) setPath(path *gg.Path) {
	r.dc.ClearPath()
	r.dc.SetTransform(r.view)
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			r.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			r.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			r.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			r.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			r.dc.ClosePath()
		}
	}
}

func (r *replayer) applyBrush(brush recording.Brush, fill bool) {
	c := gg.Black
	if sb, ok := brush.(recording.SolidBrush); ok {
		c = sb.Color
	}
	if fill {
		r.dc.SetFillBrush(gg.Solid(c))
	} else {
		r.dc.SetStrokeBrush(gg.Solid(c))
	}
}

func (r *replayer) applyStroke(stroke recording.Stroke) {
	r.dc.SetLineWidth(stroke.Width)
	r.dc.SetLineCap(convertLineCap(stroke.Cap))
	r.dc.SetLineJoin(convertLineJoin(stroke.Join))
	r.dc.SetMiterLimit(stroke.MiterLimit)
	if len(stroke.DashPattern) > 0 {
		r.dc.SetDash(stroke.DashPattern...)
		r.dc.SetDashOffset(stroke.DashOffset)
	} else {
		r.dc.ClearDash()
	}
}

func convertFillRule(rule recording.FillRule) gg.FillRule {
	if rule == recording.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func convertLineCap(c recording.LineCap) gg.LineCap {
	switch c {
	case recording.LineCapRound:
		return gg.LineCapRound
	case recording.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func convertLineJoin(j recording.LineJoin) gg.LineJoin {
	switch j {
	case recording.LineJoinRound:
		return gg.LineJoinRound
	case recording.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
