// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

// Context is the method surface of a WebGL2-style rendering context.
//
// Calls do not return errors. As in GL, a failed call records an error
// code that the next GetError reports.
type Context interface {
	// ActiveTexture selects the texture unit that BindTexture affects.
	ActiveTexture(unit Enum)

	// BindTexture binds t to target on the active texture unit.
	BindTexture(target Enum, t Texture)

	// UseProgram installs p as part of the current rendering state.
	UseProgram(p Program)

	// Enable turns on a server-side capability such as BLEND.
	Enable(capability Enum)

	// Disable turns off a server-side capability.
	Disable(capability Enum)

	// IsEnabled reports whether capability is on.
	IsEnabled(capability Enum) bool

	// GetParameter returns the value of a state parameter. The dynamic
	// type depends on pname: bool for capabilities, Program for
	// CURRENT_PROGRAM, Texture for TEXTURE_BINDING_2D, Enum for enumerated
	// state, int for limits, [4]int for boxes, [4]float32 for colors and
	// string for VERSION, VENDOR and RENDERER. Unknown names return nil.
	GetParameter(pname Enum) any

	CreateTexture() Texture
	DeleteTexture(t Texture)
	CreateProgram() Program
	DeleteProgram(p Program)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Scissor(x, y, width, height int)
	Viewport(x, y, width, height int)
	BlendFunc(sfactor, dfactor Enum)
	DrawArrays(mode Enum, first, count int)

	// GetError returns and clears the oldest recorded error code.
	GetError() Enum
}
