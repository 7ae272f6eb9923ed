// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glsoft is a CPU reference implementation of gl.Context.
//
// It tracks the full state every query in package gl can ask about and
// reports GL errors the way a driver would, which makes it the oracle for
// checking cached state and the stand-in context for headless runs. Only
// clears touch the framebuffer; draws are validated and counted.
package glsoft
