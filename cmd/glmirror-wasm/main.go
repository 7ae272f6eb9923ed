// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

// Command glmirror-wasm installs the state mirror on the first canvas of
// the page it is loaded into and rebinds that canvas's getContext, so page
// scripts that acquire their context afterwards render through the mirror.
// It keeps running to serve their calls.
//
// Load it before the page's renderer starts. Configuration comes from
// GLMIRROR_* variables set on the Go instance's env before it starts.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glmirror"
	"github.com/gogpu/glmirror/webgl"
)

func main() {
	glmirror.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := glmirror.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	inst, err := glmirror.Install(webgl.Document(), cfg)
	if err != nil {
		// The page keeps rendering without the mirror.
		log.Printf("glmirror not installed: %v", err)
	} else if err := webgl.Rebind(inst); err != nil {
		log.Printf("glmirror not rebound: %v", err)
	}
	select {}
}
