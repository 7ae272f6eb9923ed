// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/glmirror/surface"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name          string
		ratio         float64
		width, height float64
		wantW, wantH  float64
	}{
		{"wide viewport", 16.0 / 9.0, 1920, 800, 800 * 16.0 / 9.0, 800},
		{"tall viewport", 16.0 / 9.0, 800, 1200, 800, 450},
		{"exact", 2, 200, 100, 200, 100},
		{"square", 1, 300, 500, 300, 300},
		{"empty", 1.5, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.ratio, tt.width, tt.height)
			if math.Abs(w-tt.wantW) > 1e-9 || math.Abs(h-tt.wantH) > 1e-9 {
				t.Errorf("FitSize(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.ratio, tt.width, tt.height, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitSizeProperties(t *testing.T) {
	for _, ratio := range []float64{0.5, 1, 4.0 / 3.0, 16.0 / 9.0, 21.0 / 9.0} {
		for _, vp := range [][2]float64{{1, 1}, {640, 480}, {1920, 1080}, {300, 2000}, {5000, 10}} {
			w, h := FitSize(ratio, vp[0], vp[1])
			if w > vp[0] || h > vp[1] {
				t.Errorf("FitSize(%v, %v) = (%v, %v) exceeds viewport", ratio, vp, w, h)
			}
			if math.Abs(w/h-ratio) > 1e-9 {
				t.Errorf("FitSize(%v, %v) ratio = %v", ratio, vp, w/h)
			}
			if w != vp[0] && h != vp[1] {
				t.Errorf("FitSize(%v, %v) = (%v, %v) touches neither edge", ratio, vp, w, h)
			}
		}
	}
}

func TestInstallAspectRatioDisabled(t *testing.T) {
	canvas := newCanvas(300, 150)
	page := surface.NewPage(1920, 1080, canvas)

	inst, err := Install(page, noResize())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if inst.Resizer() != nil {
		t.Error("Resizer() != nil with aspect ratio disabled")
	}
	if canvas.Styled() {
		t.Error("canvas styled with aspect ratio disabled")
	}
	if w, h := canvas.Size(); w != 300 || h != 150 {
		t.Errorf("canvas Size() = (%d, %d), want (300, 150)", w, h)
	}
	if got := page.ResizeListeners(); got != 0 {
		t.Errorf("ResizeListeners() = %d, want 0", got)
	}
}

func TestInstallAspectRatioFits(t *testing.T) {
	canvas := newCanvas(300, 150)
	page := surface.NewPage(1000, 1000, canvas)
	cfg := DefaultConfig()
	cfg.AspectRatio = 2

	inst, err := Install(page, cfg)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if w, h := canvas.Size(); w != 1000 || h != 500 {
		t.Errorf("canvas Size() = (%d, %d), want (1000, 500)", w, h)
	}
	want := map[string]string{
		"position":  "relative",
		"display":   "block",
		"top":       "50%",
		"left":      "50%",
		"transform": "translate(-50%, -50%)",
	}
	for prop, v := range want {
		if got := canvas.Style(prop); got != v {
			t.Errorf("Style(%q) = %q, want %q", prop, got, v)
		}
	}
	if got := inst.Resizer().Extent(); got.Width != 1000 || got.Height != 500 || got.DepthOrArrayLayers != 1 {
		t.Errorf("Extent() = %+v, want 1000x500x1", got)
	}
	if got := inst.Resizer().Ratio(); got != 2 {
		t.Errorf("Ratio() = %v, want 2", got)
	}
}

func TestInstallRefitsOnResize(t *testing.T) {
	canvas := newCanvas(300, 150)
	page := surface.NewPage(800, 600, canvas)

	if _, err := Install(page, DefaultConfig()); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if w, h := canvas.Size(); w != 800 || h != 450 {
		t.Errorf("initial canvas Size() = (%d, %d), want (800, 450)", w, h)
	}

	page.Resize(1280, 1440)
	if w, h := canvas.Size(); w != 1280 || h != 720 {
		t.Errorf("canvas Size() after resize = (%d, %d), want (1280, 720)", w, h)
	}

	page.Resize(1000, 360)
	if w, h := canvas.Size(); w != 640 || h != 360 {
		t.Errorf("canvas Size() after resize = (%d, %d), want (640, 360)", w, h)
	}
}

// TestResizerTruncates tests that fractional fitted sizes are truncated.
func TestResizerTruncates(t *testing.T) {
	canvas := newCanvas(1, 1)
	page := surface.NewPage(100, 100, canvas)
	cfg := DefaultConfig()
	cfg.AspectRatio = 3

	inst, err := Install(page, cfg)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	// 100 / 3 = 33.33...
	if w, h := canvas.Size(); w != 100 || h != 33 {
		t.Errorf("canvas Size() = (%d, %d), want (100, 33)", w, h)
	}
	if got := inst.Resizer().Fit(-5, 10); got.Width != 0 || got.Height != 0 {
		t.Errorf("Fit(-5, 10) = %+v, want 0x0", got)
	}
}

// TestResizeResizesContext tests that the software context framebuffer
// follows the fitted canvas.
func TestResizeResizesContext(t *testing.T) {
	canvas := newCanvas(10, 10)
	page := surface.NewPage(400, 400, canvas)
	cfg := DefaultConfig()
	cfg.AspectRatio = 4

	inst, err := Install(page, cfg)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	raw := inst.Context().Unwrap()
	soft, ok := raw.(interface{ Image() *image.RGBA })
	if !ok {
		t.Fatalf("wrapped context %T has no Image()", raw)
	}
	if b := soft.Image().Bounds(); b.Dx() != 400 || b.Dy() != 100 {
		t.Errorf("framebuffer = %v, want 400x100", b)
	}
}
