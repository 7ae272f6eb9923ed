// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface models the page side of a rendering setup: drawing
// elements that hand out rendering contexts (Surface) and the document
// that holds them together with its viewport and viewport events
// (Document).
//
// # Implementations
//
//   - Canvas and Page: in-memory, for tests and headless tools
//   - webgl.Canvas and webgl.Document: the browser, under js/wasm
//
// Viewport geometry and events use the gpucontext interfaces shared with
// the rest of the gogpu ecosystem, so any gpucontext.WindowProvider can
// stand in for a browser window.
//
// # Usage
//
//	canvas := surface.NewCanvas(800, 600)
//	canvas.RegisterContext("webgl2", func() gl.Context {
//	    return glsoft.New(800, 600)
//	})
//	page := surface.NewPage(1280, 720, canvas)
//
//	ctx := page.Surfaces()[0].GetContext("webgl2")
package surface
