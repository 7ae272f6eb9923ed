// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package webgl implements gl.Context and the surface interfaces on top of
// a browser's WebGL API through syscall/js.
//
// The package is only built for GOOS=js GOARCH=wasm.
//
//	inst, err := glmirror.Install(webgl.Document(), cfg)
//	if err == nil {
//		err = webgl.Rebind(inst) // page scripts now get the mirrored context
//	}
package webgl
