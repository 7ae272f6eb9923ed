// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/gogpu/glmirror/gl"
)

// Context is a gl.Context backed by a WebGLRenderingContext or
// WebGL2RenderingContext.
//
// WebGL objects are JavaScript values; Context hands out numeric names for
// them and keeps the mapping both ways, so gl.Program and gl.Texture stay
// comparable. Name lookups are constant time. Objects deleted through
// Context are forgotten; objects deleted behind its back stay in the
// table.
type Context struct {
	v js.Value

	next    uint
	objects map[uint]js.Value
	names   js.Value // WeakMap from object to name
}

var _ gl.Context = (*Context)(nil)

// NewContext wraps a JavaScript rendering context value.
func NewContext(v js.Value) *Context {
	return &Context{
		v:       v,
		objects: make(map[uint]js.Value),
		names:   js.Global().Get("WeakMap").New(),
	}
}

// Value returns the underlying JavaScript context.
func (c *Context) Value() js.Value {
	return c.v
}

func (c *Context) name(v js.Value) uint {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	if n := c.names.Call("get", v); !n.IsUndefined() {
		return uint(n.Int())
	}
	c.next++
	c.objects[c.next] = v
	c.names.Call("set", v, c.next)
	return c.next
}

func (c *Context) forget(o gl.Object) {
	if v, ok := c.objects[o.V]; ok {
		c.names.Call("delete", v)
		delete(c.objects, o.V)
	}
}

func (c *Context) object(o gl.Object) js.Value {
	if v, ok := c.objects[o.V]; ok {
		return v
	}
	return js.Null()
}

func (c *Context) ActiveTexture(unit gl.Enum) {
	c.v.Call("activeTexture", int(unit))
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	c.v.Call("bindTexture", int(target), c.object(gl.Object(t)))
}

func (c *Context) UseProgram(p gl.Program) {
	c.v.Call("useProgram", c.object(gl.Object(p)))
}

func (c *Context) Enable(capability gl.Enum) {
	c.v.Call("enable", int(capability))
}

func (c *Context) Disable(capability gl.Enum) {
	c.v.Call("disable", int(capability))
}

func (c *Context) IsEnabled(capability gl.Enum) bool {
	return c.v.Call("isEnabled", int(capability)).Bool()
}

func (c *Context) GetParameter(pname gl.Enum) any {
	v := c.v.Call("getParameter", int(pname))
	switch pname {
	case gl.BLEND, gl.CULL_FACE, gl.DEPTH_TEST, gl.DITHER,
		gl.POLYGON_OFFSET_FILL, gl.SCISSOR_TEST, gl.STENCIL_TEST:
		return v.Bool()
	case gl.CURRENT_PROGRAM:
		return gl.Program{V: c.name(v)}
	case gl.TEXTURE_BINDING_2D:
		return gl.Texture{V: c.name(v)}
	case gl.ACTIVE_TEXTURE, gl.BLEND_SRC_RGB, gl.BLEND_DST_RGB:
		return gl.Enum(v.Int())
	case gl.VIEWPORT, gl.SCISSOR_BOX:
		var box [4]int
		for i := range box {
			box[i] = v.Index(i).Int()
		}
		return box
	case gl.COLOR_CLEAR_VALUE:
		var rgba [4]float32
		for i := range rgba {
			rgba[i] = float32(v.Index(i).Float())
		}
		return rgba
	case gl.MAX_TEXTURE_SIZE, gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return v.Int()
	case gl.VERSION, gl.VENDOR, gl.RENDERER:
		return v.String()
	}
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return v
}

func (c *Context) CreateTexture() gl.Texture {
	return gl.Texture{V: c.name(c.v.Call("createTexture"))}
}

func (c *Context) DeleteTexture(t gl.Texture) {
	c.v.Call("deleteTexture", c.object(gl.Object(t)))
	c.forget(gl.Object(t))
}

func (c *Context) CreateProgram() gl.Program {
	return gl.Program{V: c.name(c.v.Call("createProgram"))}
}

func (c *Context) DeleteProgram(p gl.Program) {
	c.v.Call("deleteProgram", c.object(gl.Object(p)))
	c.forget(gl.Object(p))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.v.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear(mask gl.Enum) {
	c.v.Call("clear", int(mask))
}

func (c *Context) Scissor(x, y, width, height int) {
	c.v.Call("scissor", x, y, width, height)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.v.Call("viewport", x, y, width, height)
}

func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	c.v.Call("blendFunc", int(sfactor), int(dfactor))
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	c.v.Call("drawArrays", int(mode), first, count)
}

func (c *Context) GetError() gl.Enum {
	return gl.Enum(c.v.Call("getError").Int())
}
