// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/glmirror/gl"
	"github.com/gogpu/gpucontext"
)

// Canvas is an in-memory Surface.
//
// Context kinds are resolved through a registry of factories. As with an
// HTML canvas, the first successful GetContext fixes the kind: later calls
// with that kind return the same context and calls with any other kind
// return nil.
//
// Example:
//
//	c := surface.NewCanvas(800, 600)
//	c.RegisterContext("webgl2", func() gl.Context { return glsoft.New(800, 600) })
//	ctx := c.GetContext("webgl2")
type Canvas struct {
	kinds   *gpucontext.Registry[gl.Context]
	kind    string
	context gl.Context

	width  int
	height int
	style  map[string]string

	getContextCalls int
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas with a width x height drawing buffer.
// Negative dimensions are clamped to zero.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		kinds:  gpucontext.NewRegistry[gl.Context](),
		width:  max(width, 0),
		height: max(height, 0),
		style:  make(map[string]string),
	}
}

// RegisterContext makes kind available through GetContext. The factory
// runs at most once, on the first GetContext call for kind.
func (c *Canvas) RegisterContext(kind string, factory func() gl.Context) {
	c.kinds.Register(kind, factory)
}

// GetContext implements Surface.
func (c *Canvas) GetContext(kind string) gl.Context {
	c.getContextCalls++
	if c.context != nil {
		if kind != c.kind {
			return nil
		}
		return c.context
	}
	if !c.kinds.Has(kind) {
		return nil
	}
	ctx := c.kinds.Get(kind)
	if ctx == nil {
		return nil
	}
	c.kind = kind
	c.context = ctx
	return ctx
}

// GetContextCalls returns how many times GetContext was called on the
// canvas itself.
func (c *Canvas) GetContextCalls() int {
	return c.getContextCalls
}

// Size implements Surface.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetSize implements Surface. A context implementing Sizer is resized
// along with the canvas.
func (c *Canvas) SetSize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	if s, ok := c.context.(Sizer); ok {
		s.Resize(c.width, c.height)
	}
}

// SetStyle implements Surface.
func (c *Canvas) SetStyle(property, value string) {
	c.style[property] = value
}

// Style returns the value of a style property, or "" if it was never set.
func (c *Canvas) Style(property string) string {
	return c.style[property]
}

// Styled reports whether any style property has been set.
func (c *Canvas) Styled() bool {
	return len(c.style) > 0
}
