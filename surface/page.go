// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gpucontext"

// Page is an in-memory Document. It doubles as the viewport and the event
// source it reports, so tests and headless tools can drive resizes.
//
// Example:
//
//	page := surface.NewPage(1280, 720, canvas)
//	page.Resize(1920, 1080) // runs every OnResize listener
type Page struct {
	surfaces []Surface
	width    int
	height   int
	scale    float64
	events   *resizeEvents
}

var (
	_ Document                  = (*Page)(nil)
	_ gpucontext.WindowProvider = (*Page)(nil)
)

// NewPage creates a page with a width x height viewport holding surfaces
// in document order.
func NewPage(width, height int, surfaces ...Surface) *Page {
	return &Page{
		surfaces: surfaces,
		width:    width,
		height:   height,
		events:   &resizeEvents{},
	}
}

// Append adds a surface at the end of the document.
func (p *Page) Append(s Surface) {
	p.surfaces = append(p.surfaces, s)
}

// Surfaces implements Document.
func (p *Page) Surfaces() []Surface {
	return p.surfaces
}

// Viewport implements Document.
func (p *Page) Viewport() gpucontext.WindowProvider {
	return p
}

// Events implements Document.
func (p *Page) Events() gpucontext.EventSource {
	return p.events
}

// Size implements gpucontext.WindowProvider.
func (p *Page) Size() (int, int) {
	return p.width, p.height
}

// ScaleFactor implements gpucontext.WindowProvider. A page created without
// SetScaleFactor reports 1.0.
func (p *Page) ScaleFactor() float64 {
	if p.scale == 0 {
		return 1.0
	}
	return p.scale
}

// SetScaleFactor sets the value ScaleFactor reports.
func (p *Page) SetScaleFactor(scale float64) {
	p.scale = scale
}

// RequestRedraw implements gpucontext.WindowProvider. It does nothing.
func (p *Page) RequestRedraw() {}

// Resize changes the viewport and notifies resize listeners in
// registration order.
func (p *Page) Resize(width, height int) {
	p.width = width
	p.height = height
	for _, fn := range p.events.resize {
		fn(width, height)
	}
}

// ResizeListeners returns the number of registered resize listeners.
func (p *Page) ResizeListeners() int {
	return len(p.events.resize)
}

// resizeEvents records OnResize callbacks and ignores every other event.
type resizeEvents struct {
	gpucontext.NullEventSource
	resize []func(width, height int)
}

func (e *resizeEvents) OnResize(fn func(width, height int)) {
	e.resize = append(e.resize, fn)
}
