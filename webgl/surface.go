// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/gogpu/glmirror/gl"
	"github.com/gogpu/glmirror/surface"
	"github.com/gogpu/gpucontext"
)

// Canvas is a surface.Surface backed by an HTMLCanvasElement.
type Canvas struct {
	el  js.Value
	ctx *Context

	// native is the element's own getContext, bound to the element, once
	// Rebind has replaced it.
	native js.Value
}

var _ surface.Surface = (*Canvas)(nil)

// NewCanvas wraps a canvas element.
func NewCanvas(el js.Value) *Canvas {
	return &Canvas{el: el}
}

// GetContext implements surface.Surface. The browser returns the same
// context object for repeated calls with one kind and null for any other
// kind; both behaviors carry through.
func (c *Canvas) GetContext(kind string) gl.Context {
	var v js.Value
	if c.native.Truthy() {
		v = c.native.Invoke(kind)
	} else {
		v = c.el.Call("getContext", kind)
	}
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	if c.ctx == nil || !c.ctx.Value().Equal(v) {
		c.ctx = NewContext(v)
	}
	return c.ctx
}

// Size implements surface.Surface.
func (c *Canvas) Size() (width, height int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

// SetSize implements surface.Surface.
func (c *Canvas) SetSize(width, height int) {
	c.el.Set("width", width)
	c.el.Set("height", height)
}

// SetStyle implements surface.Surface.
func (c *Canvas) SetStyle(property, value string) {
	c.el.Get("style").Call("setProperty", property, value)
}

// page is the browser document.
type page struct {
	doc      js.Value
	window   js.Value
	events   *windowEvents
	canvases []*Canvas
}

// Document returns the current browser document.
func Document() surface.Document {
	window := js.Global()
	return &page{
		doc:    window.Get("document"),
		window: window,
		events: &windowEvents{window: window},
	}
}

// Surfaces implements surface.Document. Canvas elements are returned in
// document order. An element keeps the same *Canvas across calls.
func (p *page) Surfaces() []surface.Surface {
	list := p.doc.Call("getElementsByTagName", "canvas")
	n := list.Get("length").Int()
	out := make([]surface.Surface, 0, n)
	for i := range n {
		out = append(out, p.canvas(list.Index(i)))
	}
	return out
}

func (p *page) canvas(el js.Value) *Canvas {
	for _, c := range p.canvases {
		if c.el.Equal(el) {
			return c
		}
	}
	c := NewCanvas(el)
	p.canvases = append(p.canvases, c)
	return c
}

func (p *page) Viewport() gpucontext.WindowProvider {
	return p
}

func (p *page) Events() gpucontext.EventSource {
	return p.events
}

// Size reports the window's inner size in CSS pixels.
func (p *page) Size() (int, int) {
	return p.window.Get("innerWidth").Int(), p.window.Get("innerHeight").Int()
}

func (p *page) ScaleFactor() float64 {
	if dpr := p.window.Get("devicePixelRatio"); dpr.Truthy() {
		return dpr.Float()
	}
	return 1.0
}

func (p *page) RequestRedraw() {}

// windowEvents delivers window "resize" events. Other events are not
// observed.
type windowEvents struct {
	gpucontext.NullEventSource
	window js.Value
	funcs  []js.Func
}

func (e *windowEvents) OnResize(fn func(width, height int)) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn(e.window.Get("innerWidth").Int(), e.window.Get("innerHeight").Int())
		return nil
	})
	e.funcs = append(e.funcs, f)
	e.window.Call("addEventListener", "resize", f)
}
