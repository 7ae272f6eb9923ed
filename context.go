// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import "github.com/gogpu/glmirror/gl"

// Context is a gl.Context that mirrors part of the state of the context
// it wraps and answers queries for that part from memory.
//
// ActiveTexture, BindTexture, UseProgram, Enable and Disable update the
// mirror and then forward the call unchanged. GetParameter answers the
// tracked names (see Tracked) from the mirror without reaching the
// wrapped context and forwards everything else. All other gl.Context
// methods are the wrapped context's own, promoted through embedding.
//
// The mirror is only as accurate as its inputs: a state change made on
// the wrapped context directly (for example through Unwrap) is not seen,
// and later queries return the stale mirrored value.
//
// Context is not safe for concurrent use.
type Context struct {
	gl.Context

	state State
	stats Stats
}

var _ gl.Context = (*Context)(nil)

// NewContext wraps raw. The mirror starts in the zero State regardless of
// raw's actual state, so wrap a context before changing any tracked state.
func NewContext(raw gl.Context) *Context {
	return &Context{Context: raw}
}

// Unwrap returns the wrapped context.
func (c *Context) Unwrap() gl.Context {
	return c.Context
}

// State returns a copy of the mirrored state.
func (c *Context) State() State {
	return c.state
}

// Stats returns the interception counters.
func (c *Context) Stats() Stats {
	return c.stats
}

func (c *Context) ActiveTexture(unit gl.Enum) {
	c.state.ActiveTexture = unit
	c.stats.Writes++
	c.Context.ActiveTexture(unit)
}

// BindTexture mirrors bindings to the TEXTURE_2D target only. The mirror
// keeps a single 2D slot, not one per texture unit.
func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	if target == gl.TEXTURE_2D {
		c.state.Texture2D = t
		c.stats.Writes++
	}
	c.Context.BindTexture(target, t)
}

func (c *Context) UseProgram(p gl.Program) {
	c.state.Program = p
	c.stats.Writes++
	c.Context.UseProgram(p)
}

func (c *Context) Enable(capability gl.Enum) {
	if c.state.setCapability(capability, true) {
		c.stats.Writes++
	}
	c.Context.Enable(capability)
}

func (c *Context) Disable(capability gl.Enum) {
	if c.state.setCapability(capability, false) {
		c.stats.Writes++
	}
	c.Context.Disable(capability)
}

func (c *Context) GetParameter(pname gl.Enum) any {
	if v, ok := c.state.parameter(pname); ok {
		c.stats.Hits++
		return v
	}
	c.stats.Forwarded++
	return c.Context.GetParameter(pname)
}
