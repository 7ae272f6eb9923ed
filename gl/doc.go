// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl defines the WebGL2-style method surface shared by every
// rendering context in this module, together with the enumerants and
// object handle types it uses.
//
// Constant names keep their GL spelling so call sites read like the GL
// API they stand for:
//
//	ctx.Enable(gl.BLEND)
//	ctx.BindTexture(gl.TEXTURE_2D, tex)
//	prog := ctx.GetParameter(gl.CURRENT_PROGRAM).(gl.Program)
package gl
