// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures gl.Context calls as typed commands.
//
// A Recorder sits in front of any gl.Context, forwards each call unchanged
// and appends a Command describing it. Per-type counts make it easy to
// assert how many times the real context was reached:
//
//	rec := recording.New(glsoft.New(800, 600))
//	ctx := glmirror.NewContext(rec)
//	ctx.Enable(gl.BLEND)
//	_ = ctx.GetParameter(gl.BLEND)
//	rec.Count(recording.CmdGetParameter) // 0: answered from the mirror
//
// WithQueryLatency adds a fixed delay to every state read so benchmarks
// can model the cost of a synchronous round trip.
package recording
