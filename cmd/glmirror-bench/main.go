// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glmirror-bench compares a state save/restore workload on a raw
// context against the same workload on a mirrored one.
//
// Both runs use a software context behind a recorder that can add a
// per-query delay, standing in for a driver round trip.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/glmirror"
	"github.com/gogpu/glmirror/gl"
	"github.com/gogpu/glmirror/glsoft"
	"github.com/gogpu/glmirror/recording"
	"github.com/gogpu/glmirror/surface"
	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		frames   = flag.Int("frames", 600, "frames to run")
		draws    = flag.Int("draws", 8, "state save/draw/restore passes per frame")
		latency  = flag.Duration("latency", 0, "simulated delay per state query")
		ratio    = flag.Float64("ratio", 16.0/9.0, "aspect ratio, or -1 to disable resizing")
		width    = flag.Int("width", 1280, "viewport width")
		height   = flag.Int("height", 720, "viewport height")
		snapshot = flag.String("snapshot", "", "write the mirrored framebuffer to this PNG file")
		verbose  = flag.Bool("v", false, "log installation details")
	)
	flag.Parse()

	if *verbose {
		glmirror.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := glmirror.DefaultConfig()
	cfg.AspectRatio = *ratio
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	rawRec, rawTime := run(*frames, *draws, func() (gl.Context, *recording.Recorder) {
		rec := recording.New(glsoft.New(*width, *height), recording.WithQueryLatency(*latency), recording.WithoutLog())
		return rec, rec
	})

	var inst *glmirror.Installation
	mirRec, mirTime := run(*frames, *draws, func() (gl.Context, *recording.Recorder) {
		var rec *recording.Recorder
		canvas := surface.NewCanvas(*width, *height)
		canvas.RegisterContext(cfg.ContextKind, func() gl.Context {
			rec = recording.New(glsoft.New(*width, *height), recording.WithQueryLatency(*latency), recording.WithoutLog())
			return rec
		})
		var err error
		inst, err = glmirror.Install(surface.NewPage(*width, *height, canvas), cfg)
		if err != nil {
			log.Fatalf("install: %v", err)
		}
		return inst.GetContext(cfg.ContextKind), rec
	})

	p := message.NewPrinter(language.English)
	p.Printf("frames %d, passes per frame %d, query latency %v\n\n", *frames, *draws, *latency)
	p.Printf("%-10s %12s %12s %14s\n", "context", "queries", "draws", "time")
	p.Printf("%-10s %12d %12d %14v\n", "raw", rawRec.Queries(), rawRec.Count(recording.CmdDrawArrays), rawTime)
	p.Printf("%-10s %12d %12d %14v\n", "mirrored", mirRec.Queries(), mirRec.Count(recording.CmdDrawArrays), mirTime)

	stats := inst.Context().Stats()
	p.Printf("\nmirror hits %d, forwarded %d, writes %d, hit rate %.1f%%\n",
		stats.Hits, stats.Forwarded, stats.Writes, stats.HitRate()*100)
	if r := inst.Resizer(); r != nil {
		e := r.Extent()
		p.Printf("surface fitted to %dx%d (ratio %.3f)\n", e.Width, e.Height, r.Ratio())
	}

	if *snapshot != "" {
		w, h := inst.Size()
		if err := writeSnapshot(*snapshot, mirRec, w, h); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("snapshot saved to %s (%dx%d)", *snapshot, w, h)
	}
}

// run builds a context with setup and drives the workload on it.
func run(frames, draws int, setup func() (gl.Context, *recording.Recorder)) (*recording.Recorder, time.Duration) {
	ctx, rec := setup()
	ctx.ActiveTexture(gl.TEXTURE0)
	prog := ctx.CreateProgram()
	textures := make([]gl.Texture, 4)
	for i := range textures {
		textures[i] = ctx.CreateTexture()
	}
	rec.Reset()

	start := time.Now()
	for f := range frames {
		ctx.ClearColor(float32(f%60)/60, 0.2, 0.3, 1)
		ctx.Clear(gl.COLOR_BUFFER_BIT)
		for d := range draws {
			pass(ctx, prog, textures[d%len(textures)], d)
		}
	}
	return rec, time.Since(start)
}

// pass saves the state it touches, draws, and restores it, the way
// overlays sharing a context with an engine do.
func pass(ctx gl.Context, prog gl.Program, tex gl.Texture, n int) {
	savedUnit := ctx.GetParameter(gl.ACTIVE_TEXTURE).(gl.Enum)
	savedProg := ctx.GetParameter(gl.CURRENT_PROGRAM).(gl.Program)
	savedTex := ctx.GetParameter(gl.TEXTURE_BINDING_2D).(gl.Texture)
	savedBlend := ctx.GetParameter(gl.BLEND).(bool)
	savedScissor := ctx.GetParameter(gl.SCISSOR_TEST).(bool)
	savedDepth := ctx.GetParameter(gl.DEPTH_TEST).(bool)
	viewport := ctx.GetParameter(gl.VIEWPORT).([4]int)

	ctx.ActiveTexture(gl.TEXTURE0)
	ctx.UseProgram(prog)
	ctx.BindTexture(gl.TEXTURE_2D, tex)
	ctx.Enable(gl.BLEND)
	ctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	ctx.Disable(gl.DEPTH_TEST)
	ctx.Enable(gl.SCISSOR_TEST)
	w, h := viewport[2]/4, viewport[3]/4
	ctx.Scissor(n%4*w, n/4%4*h, w, h)
	ctx.DrawArrays(gl.TRIANGLES, 0, 6)
	ctx.Clear(gl.COLOR_BUFFER_BIT)

	setCap(ctx, gl.DEPTH_TEST, savedDepth)
	setCap(ctx, gl.SCISSOR_TEST, savedScissor)
	setCap(ctx, gl.BLEND, savedBlend)
	ctx.BindTexture(gl.TEXTURE_2D, savedTex)
	ctx.UseProgram(savedProg)
	ctx.ActiveTexture(savedUnit)
}

func setCap(ctx gl.Context, capability gl.Enum, on bool) {
	if on {
		ctx.Enable(capability)
	} else {
		ctx.Disable(capability)
	}
}

func writeSnapshot(path string, rec *recording.Recorder, w, h int) error {
	soft, ok := rec.Inner().(*glsoft.Context)
	if !ok {
		return nil
	}
	src := soft.Image()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
