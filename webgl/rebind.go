// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package webgl

import (
	"fmt"
	"syscall/js"

	"github.com/gogpu/glmirror"
	"github.com/gogpu/glmirror/gl"
)

// Rebind replaces getContext on the installation's canvas element, so that
// page scripts calling canvas.getContext(kind) receive the mirrored
// context whatever kind they ask for.
//
// The object handed to scripts is a Proxy over the real WebGL context.
// activeTexture, bindTexture, useProgram, enable, disable, getParameter,
// deleteTexture and deleteProgram go through the mirror; every other
// property is read from the real context, with methods bound to it.
// getParameter for names outside the mirror returns the browser's own
// value unchanged.
//
// Rebind must run before page scripts first call getContext. The
// JavaScript functions it creates live as long as the page.
func Rebind(inst *glmirror.Installation) error {
	canvas, ok := inst.Surface.(*Canvas)
	if !ok {
		return fmt.Errorf("webgl: installation surface is %T, not *webgl.Canvas", inst.Surface)
	}
	mirror := inst.Context()
	raw, ok := mirror.Unwrap().(*Context)
	if !ok {
		return fmt.Errorf("webgl: mirrored context is %T, not *webgl.Context", mirror.Unwrap())
	}
	if canvas.native.Truthy() {
		return nil
	}

	b := &binding{mirror: mirror, raw: raw}
	proxy := js.Global().Get("Proxy").New(raw.Value(), b.handler())

	canvas.native = canvas.el.Get("getContext").Call("bind", canvas.el)
	canvas.el.Set("getContext", js.FuncOf(func(js.Value, []js.Value) any {
		return proxy
	}))
	return nil
}

// binding routes intercepted WebGL calls from JavaScript into the mirror.
type binding struct {
	mirror *glmirror.Context
	raw    *Context
}

func (b *binding) texture(v js.Value) gl.Texture {
	return gl.Texture{V: b.raw.name(v)}
}

func (b *binding) program(v js.Value) gl.Program {
	return gl.Program{V: b.raw.name(v)}
}

func enumArg(args []js.Value, i int) gl.Enum {
	if i >= len(args) {
		return 0
	}
	return gl.Enum(args[i].Int())
}

func objectArg(args []js.Value, i int) js.Value {
	if i >= len(args) {
		return js.Null()
	}
	return args[i]
}

func (b *binding) methods() map[string]js.Func {
	return map[string]js.Func{
		"activeTexture": js.FuncOf(func(_ js.Value, args []js.Value) any {
			b.mirror.ActiveTexture(enumArg(args, 0))
			return nil
		}),
		"bindTexture": js.FuncOf(func(_ js.Value, args []js.Value) any {
			b.mirror.BindTexture(enumArg(args, 0), b.texture(objectArg(args, 1)))
			return nil
		}),
		"useProgram": js.FuncOf(func(_ js.Value, args []js.Value) any {
			b.mirror.UseProgram(b.program(objectArg(args, 0)))
			return nil
		}),
		"enable": js.FuncOf(func(_ js.Value, args []js.Value) any {
			b.mirror.Enable(enumArg(args, 0))
			return nil
		}),
		"disable": js.FuncOf(func(_ js.Value, args []js.Value) any {
			b.mirror.Disable(enumArg(args, 0))
			return nil
		}),
		"getParameter": js.FuncOf(func(_ js.Value, args []js.Value) any {
			pname := enumArg(args, 0)
			if !glmirror.Tracked(pname) {
				return b.raw.Value().Call("getParameter", objectArg(args, 0))
			}
			return b.toJS(b.mirror.GetParameter(pname))
		}),
		"deleteTexture": js.FuncOf(func(_ js.Value, args []js.Value) any {
			b.mirror.DeleteTexture(b.texture(objectArg(args, 0)))
			return nil
		}),
		"deleteProgram": js.FuncOf(func(_ js.Value, args []js.Value) any {
			b.mirror.DeleteProgram(b.program(objectArg(args, 0)))
			return nil
		}),
	}
}

// toJS converts a mirrored value to what WebGL's getParameter returns.
func (b *binding) toJS(v any) any {
	switch v := v.(type) {
	case gl.Enum:
		return int(v)
	case gl.Program:
		return b.raw.object(gl.Object(v))
	case gl.Texture:
		return b.raw.object(gl.Object(v))
	}
	return v
}

// handler builds the Proxy handler. Its get trap serves intercepted
// methods from Go and everything else from the real context.
func (b *binding) handler() js.Value {
	methods := b.methods()
	jsReflect := js.Global().Get("Reflect")

	h := js.Global().Get("Object").New()
	h.Set("get", js.FuncOf(func(_ js.Value, args []js.Value) any {
		target, prop := args[0], args[1]
		if prop.Type() == js.TypeString {
			if fn, ok := methods[prop.String()]; ok {
				return fn
			}
		}
		v := jsReflect.Call("get", target, prop)
		if v.Type() == js.TypeFunction {
			return v.Call("bind", target)
		}
		return v
	}))
	return h
}
