// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import "github.com/gogpu/glmirror/gl"

// State is the mirrored subset of context state.
//
// The zero value is the state right after installation: no active unit
// recorded, no program, no 2D texture, every tracked capability off.
type State struct {
	ActiveTexture gl.Enum
	Program       gl.Program
	Texture2D     gl.Texture

	Blend       bool
	CullFace    bool
	DepthTest   bool
	ScissorTest bool
	StencilTest bool
}

// setCapability records capability as on or off. Each case updates one
// flag. Capabilities outside the tracked set are ignored and reported
// as untracked.
func (s *State) setCapability(capability gl.Enum, on bool) bool {
	switch capability {
	case gl.BLEND:
		s.Blend = on
	case gl.CULL_FACE:
		s.CullFace = on
	case gl.DEPTH_TEST:
		s.DepthTest = on
	case gl.SCISSOR_TEST:
		s.ScissorTest = on
	case gl.STENCIL_TEST:
		s.StencilTest = on
	default:
		return false
	}
	return true
}

// parameter returns the mirrored value for pname with the dynamic type
// gl.Context.GetParameter uses for it. ok is false for untracked names.
func (s *State) parameter(pname gl.Enum) (v any, ok bool) {
	switch pname {
	case gl.CURRENT_PROGRAM:
		return s.Program, true
	case gl.BLEND:
		return s.Blend, true
	case gl.SCISSOR_TEST:
		return s.ScissorTest, true
	case gl.STENCIL_TEST:
		return s.StencilTest, true
	case gl.DEPTH_TEST:
		return s.DepthTest, true
	case gl.CULL_FACE:
		return s.CullFace, true
	case gl.TEXTURE_BINDING_2D:
		return s.Texture2D, true
	case gl.ACTIVE_TEXTURE:
		return s.ActiveTexture, true
	}
	return nil, false
}

// Tracked reports whether GetParameter(pname) on a mirrored Context is
// answered from the mirror.
func Tracked(pname gl.Enum) bool {
	var s State
	_, ok := s.parameter(pname)
	return ok
}
