// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/glmirror/gl"
	"github.com/gogpu/gpucontext"
)

// Surface is a visible drawing element that hands out a rendering context,
// the way an HTML canvas does.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Implementations must be comparable, and equal values must denote the
// same element: installed surfaces are looked up by value. Pointer types
// satisfy this.
type Surface interface {
	// GetContext returns the element's rendering context of the given kind
	// (for example "webgl2"), or nil if the element cannot provide one.
	// Repeated calls with the same kind return the same context.
	GetContext(kind string) gl.Context

	// Size returns the drawing buffer dimensions in pixels.
	Size() (width, height int)

	// SetSize changes the drawing buffer dimensions.
	SetSize(width, height int)

	// SetStyle sets a layout style property on the element.
	SetStyle(property, value string)
}

// Document is the page hosting surfaces.
type Document interface {
	// Surfaces returns the eligible surfaces in document order.
	Surfaces() []Surface

	// Viewport reports the dimensions of the area the page is shown in.
	Viewport() gpucontext.WindowProvider

	// Events delivers viewport events. Only OnResize is used here.
	Events() gpucontext.EventSource
}

// Sizer is implemented by contexts whose drawing buffer follows the size
// of the element that owns them.
type Sizer interface {
	Resize(width, height int)
}
