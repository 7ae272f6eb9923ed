// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import (
	"log/slog"
	"math"

	"github.com/gogpu/glmirror/surface"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// FitSize returns the largest width/height pair with the given ratio that
// fits in a width x height area.
func FitSize(ratio, width, height float64) (w, h float64) {
	w = math.Min(width, height*ratio)
	h = math.Min(height, w/ratio)
	return w, h
}

// Resizer keeps a surface at a fixed aspect ratio inside the viewport.
type Resizer struct {
	target   surface.Surface
	viewport gpucontext.WindowProvider
	ratio    float64
	log      *slog.Logger
	extent   gputypes.Extent3D
}

func newResizer(target surface.Surface, viewport gpucontext.WindowProvider, ratio float64, log *slog.Logger) *Resizer {
	return &Resizer{
		target:   target,
		viewport: viewport,
		ratio:    ratio,
		log:      log,
	}
}

// centerStyles place the element in the middle of its container whatever
// its size.
var centerStyles = [...][2]string{
	{"position", "relative"},
	{"display", "block"},
	{"top", "50%"},
	{"left", "50%"},
	{"transform", "translate(-50%, -50%)"},
}

// attach centers the surface, fits it to the current viewport and refits
// it on every resize event for the lifetime of events.
func (r *Resizer) attach(events gpucontext.EventSource) {
	for _, s := range centerStyles {
		r.target.SetStyle(s[0], s[1])
	}
	r.Refit()
	events.OnResize(func(width, height int) {
		r.Fit(width, height)
	})
}

// Refit fits the surface to the viewport's current size.
func (r *Resizer) Refit() gputypes.Extent3D {
	w, h := r.viewport.Size()
	return r.Fit(w, h)
}

// Fit sizes the surface to the largest ratio-preserving extent inside a
// width x height viewport. Fractional sizes are truncated.
func (r *Resizer) Fit(width, height int) gputypes.Extent3D {
	fw, fh := FitSize(r.ratio, float64(max(width, 0)), float64(max(height, 0)))
	r.extent = gputypes.Extent3D{Width: uint32(fw), Height: uint32(fh), DepthOrArrayLayers: 1}
	r.target.SetSize(int(r.extent.Width), int(r.extent.Height))
	r.log.Debug("glmirror: surface fitted",
		"viewport_width", width, "viewport_height", height,
		"width", r.extent.Width, "height", r.extent.Height)
	return r.extent
}

// Extent returns the size the surface was last fitted to.
func (r *Resizer) Extent() gputypes.Extent3D {
	return r.extent
}

// Ratio returns the aspect ratio the resizer maintains.
func (r *Resizer) Ratio() float64 {
	return r.ratio
}
