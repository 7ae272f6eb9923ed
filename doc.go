// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glmirror keeps a mirror of frequently queried GL context state
// so that reading it back does not round-trip to the driver.
//
// # Overview
//
// Reading state from a GL context (GetParameter) is a synchronous call
// that can stall the pipeline. Code that saves and restores state around
// its own drawing, as engines and overlays often do, pays that cost many
// times per frame. glmirror wraps the context, records the values written
// by ActiveTexture, BindTexture (TEXTURE_2D), UseProgram, Enable and
// Disable, and answers reads of those values from memory. Everything else
// passes through unchanged.
//
// # Quick Start
//
//	cfg, err := glmirror.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	inst, err := glmirror.Install(doc, cfg)
//	if err != nil {
//		// Nothing was wrapped; the page keeps working unmirrored.
//	}
//	ctx := inst.GetContext("webgl2") // *glmirror.Context
//
// # Tracked state
//
//   - ACTIVE_TEXTURE
//   - CURRENT_PROGRAM
//   - TEXTURE_BINDING_2D (one slot, not per texture unit)
//   - BLEND, CULL_FACE, DEPTH_TEST, SCISSOR_TEST, STENCIL_TEST
//
// The mirror trusts that every tracked write goes through the wrapper. A
// write made on the raw context is invisible to it.
//
// # Installation
//
// Install picks the first surface of a document, wraps its context once
// and returns an Installation that replaces the surface: its GetContext
// returns the same mirrored context for every call and every kind. A
// document without surfaces, or a surface without a context, is reported
// as an error and otherwise ignored. Installations are remembered per
// surface across all layers, so installing twice returns the first
// Installation.
//
// # Aspect ratio
//
// With Config.AspectRatio set to a positive ratio the surface is centered
// in the viewport and kept at the largest size with that ratio, refitted
// on every viewport resize. AspectRatioDisabled (-1) turns this off.
//
// # Logging
//
// The package is silent by default. Use SetLogger or WithLogger to see
// installation messages.
//
// # Subpackages
//
//   - gl: the context interface, enums and object handles
//   - glsoft: software context used as ground truth in tests and tools
//   - recording: call-recording context wrapper
//   - surface: surface and document abstractions with in-memory versions
//   - webgl: browser implementation (js/wasm)
package glmirror
