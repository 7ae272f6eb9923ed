// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/glmirror/gl"
	"github.com/gogpu/glmirror/glsoft"
	"github.com/gogpu/glmirror/surface"
)

func newCanvas(w, h int) *surface.Canvas {
	c := surface.NewCanvas(w, h)
	c.RegisterContext("webgl2", func() gl.Context { return glsoft.New(w, h) })
	return c
}

// captureLog routes the package logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func noResize() Config {
	cfg := DefaultConfig()
	cfg.AspectRatio = AspectRatioDisabled
	return cfg
}

func TestInstallGetContextIdempotent(t *testing.T) {
	buf := captureLog(t)
	canvas := newCanvas(320, 180)
	page := surface.NewPage(1280, 720, canvas)

	inst, err := Install(page, noResize())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	first := inst.GetContext("webgl2")
	second := inst.GetContext("webgl")
	third := inst.GetContext("2d")

	if first == nil {
		t.Fatal("GetContext() returned nil")
	}
	if first != second || second != third {
		t.Error("GetContext() returned different contexts for different kinds")
	}
	if _, ok := first.(*Context); !ok {
		t.Errorf("GetContext() returned %T, want *Context", first)
	}
	if first != gl.Context(inst.Context()) {
		t.Error("GetContext() and Context() disagree")
	}
	if got := canvas.GetContextCalls(); got != 1 {
		t.Errorf("canvas GetContext calls = %d, want 1", got)
	}
	if got := strings.Count(buf.String(), "glmirror: enabled"); got != 1 {
		t.Errorf("enabled logged %d times, want 1\n%s", got, buf.String())
	}
}

func TestInstallationIsSurface(t *testing.T) {
	canvas := newCanvas(320, 180)
	inst, err := Install(surface.NewPage(640, 480, canvas), noResize())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	var s surface.Surface = inst
	s.SetSize(100, 50)
	if w, h := canvas.Size(); w != 100 || h != 50 {
		t.Errorf("canvas Size() = (%d, %d), want (100, 50)", w, h)
	}
	if w, h := s.Size(); w != 100 || h != 50 {
		t.Errorf("Installation Size() = (%d, %d), want (100, 50)", w, h)
	}
}

func TestInstallFirstSurfaceOnly(t *testing.T) {
	first := newCanvas(10, 10)
	second := newCanvas(10, 10)
	inst, err := Install(surface.NewPage(100, 100, first, second), noResize())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if inst.Surface != surface.Surface(first) {
		t.Error("Install() did not pick the first surface")
	}
	if got := second.GetContextCalls(); got != 0 {
		t.Errorf("second canvas GetContext calls = %d, want 0", got)
	}
}

func TestInstallNoSurface(t *testing.T) {
	buf := captureLog(t)

	inst, err := Install(surface.NewPage(800, 600), DefaultConfig())

	if !errors.Is(err, ErrNoSurface) {
		t.Errorf("Install() error = %v, want ErrNoSurface", err)
	}
	if inst != nil {
		t.Errorf("Install() = %v, want nil", inst)
	}
	if strings.Contains(buf.String(), "glmirror: enabled") {
		t.Errorf("enabled logged without a surface:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "no canvas surface") {
		t.Errorf("missing warning in log:\n%s", buf.String())
	}
}

func TestInstallNoContext(t *testing.T) {
	canvas := surface.NewCanvas(10, 10)

	_, err := Install(surface.NewPage(100, 100, canvas), noResize())

	if !errors.Is(err, ErrNoContext) {
		t.Errorf("Install() error = %v, want ErrNoContext", err)
	}
}

func TestInstallWrongKind(t *testing.T) {
	cfg := noResize()
	cfg.ContextKind = "webgpu"

	_, err := Install(surface.NewPage(100, 100, newCanvas(10, 10)), cfg)

	if !errors.Is(err, ErrNoContext) {
		t.Errorf("Install() error = %v, want ErrNoContext", err)
	}
	if err != nil && !strings.Contains(err.Error(), "webgpu") {
		t.Errorf("Install() error = %q, want it to name the kind", err)
	}
}

func TestInstallDisabled(t *testing.T) {
	canvas := newCanvas(10, 10)
	cfg := DefaultConfig()
	cfg.Enabled = false

	inst, err := Install(surface.NewPage(100, 100, canvas), cfg)

	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Install() error = %v, want ErrDisabled", err)
	}
	if inst != nil {
		t.Error("Install() returned an installation while disabled")
	}
	if canvas.GetContextCalls() != 0 || canvas.Styled() {
		t.Error("disabled Install() touched the canvas")
	}
}

func TestInstallInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AspectRatio = 0

	_, err := Install(surface.NewPage(100, 100, newCanvas(10, 10)), cfg)

	if !errors.Is(err, ErrInvalidAspectRatio) {
		t.Errorf("Install() error = %v, want ErrInvalidAspectRatio", err)
	}
}

func TestLayerInstallCached(t *testing.T) {
	canvas := newCanvas(10, 10)
	page := surface.NewPage(160, 90, canvas)
	layer := NewLayer(DefaultConfig())

	first, err := layer.Install(page)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	second, err := layer.Install(page)
	if err != nil {
		t.Fatalf("second Install() error = %v", err)
	}

	if first != second {
		t.Error("Install() twice returned different installations")
	}
	if got := canvas.GetContextCalls(); got != 1 {
		t.Errorf("canvas GetContext calls = %d, want 1", got)
	}
	if got := page.ResizeListeners(); got != 1 {
		t.Errorf("ResizeListeners() = %d, want 1", got)
	}
	if got, ok := Installed(canvas); !ok || got != first {
		t.Errorf("Installed(canvas) = %v, %v, want first installation", got, ok)
	}
	if _, ok := Installed(newCanvas(1, 1)); ok {
		t.Error("Installed() found a surface that was never installed")
	}
}

// TestInstallTwice tests that repeated Install calls on one document share
// a single mirror.
func TestInstallTwice(t *testing.T) {
	buf := captureLog(t)
	canvas := newCanvas(10, 10)
	page := surface.NewPage(160, 90, canvas)

	first, err := Install(page, DefaultConfig())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	second, err := Install(page, DefaultConfig())
	if err != nil {
		t.Fatalf("second Install() error = %v", err)
	}

	if first != second {
		t.Fatal("Install() twice returned different installations")
	}
	a := first.GetContext("webgl2")
	b := second.GetContext("webgl2")
	if a != b {
		t.Error("installations hand out different contexts")
	}
	a.Enable(gl.BLEND)
	if got := b.GetParameter(gl.BLEND); got != true {
		t.Errorf("GetParameter(BLEND) through second = %v, want true", got)
	}
	if got := canvas.GetContextCalls(); got != 1 {
		t.Errorf("canvas GetContext calls = %d, want 1", got)
	}
	if got := page.ResizeListeners(); got != 1 {
		t.Errorf("ResizeListeners() = %d, want 1", got)
	}
	if got := strings.Count(buf.String(), "glmirror: enabled"); got != 1 {
		t.Errorf("enabled logged %d times, want 1\n%s", got, buf.String())
	}
}

func TestInstallSharedAcrossLayers(t *testing.T) {
	page := surface.NewPage(100, 100, newCanvas(10, 10))

	first, err := NewLayer(noResize()).Install(page)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	second, err := NewLayer(DefaultConfig()).Install(page)
	if err != nil {
		t.Fatalf("second Install() error = %v", err)
	}

	if first != second {
		t.Error("layers wrapped the same surface twice")
	}
	if second.Resizer() != nil {
		t.Error("second layer changed the existing installation")
	}
}

// mapSurface is a Surface whose values cannot be compared.
type mapSurface struct {
	style map[string]string
}

func (mapSurface) GetContext(string) gl.Context {
	return glsoft.New(1, 1)
}

func (mapSurface) Size() (int, int) {
	return 1, 1
}

func (mapSurface) SetSize(int, int) {}

func (s mapSurface) SetStyle(property, value string) {
	s.style[property] = value
}

func TestInstallNonComparableSurface(t *testing.T) {
	s := mapSurface{style: make(map[string]string)}
	page := surface.NewPage(100, 100, s)

	inst, err := Install(page, DefaultConfig())

	if !errors.Is(err, ErrSurfaceNotComparable) {
		t.Errorf("Install() error = %v, want ErrSurfaceNotComparable", err)
	}
	if inst != nil {
		t.Error("Install() returned an installation for a non-comparable surface")
	}
	if _, ok := Installed(s); ok {
		t.Error("Installed() found a non-comparable surface")
	}
	if len(s.style) != 0 {
		t.Error("Install() styled a surface it refused")
	}
}

// TestInstallReusesMirroredContext tests that a surface already handing out
// a mirrored context is not wrapped a second time.
func TestInstallReusesMirroredContext(t *testing.T) {
	inner := NewContext(glsoft.New(10, 10))
	canvas := surface.NewCanvas(10, 10)
	canvas.RegisterContext("webgl2", func() gl.Context { return inner })

	inst, err := Install(surface.NewPage(100, 100, canvas), noResize())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if inst.Context() != inner {
		t.Error("Install() wrapped an already mirrored context")
	}
}

func TestInstallWithLogger(t *testing.T) {
	global := captureLog(t)
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	inst, err := Install(surface.NewPage(100, 100, newCanvas(10, 10)), noResize(), WithLogger(l))
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	inst.GetContext("webgl2")

	if !strings.Contains(buf.String(), "glmirror: enabled") {
		t.Errorf("WithLogger() logger missing enabled line:\n%s", buf.String())
	}
	if global.Len() != 0 {
		t.Errorf("package logger written with WithLogger set:\n%s", global.String())
	}
}

func TestInstallMirrorsThroughInstallation(t *testing.T) {
	inst, err := Install(surface.NewPage(100, 100, newCanvas(10, 10)), noResize())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	ctx := inst.GetContext("webgl2")
	ctx.Enable(gl.STENCIL_TEST)

	if got := inst.Context().State(); !got.StencilTest || got.Blend {
		t.Errorf("State() = %+v, want only StencilTest", got)
	}
}
