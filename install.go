// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/gogpu/glmirror/gl"
	"github.com/gogpu/glmirror/surface"
)

// Installation outcomes. None of them is fatal: the caller can carry on
// with the unwrapped surface.
var (
	// ErrDisabled is returned when Config.Enabled is false.
	ErrDisabled = errors.New("glmirror: disabled by configuration")

	// ErrNoSurface is returned when the document has no eligible surface.
	ErrNoSurface = errors.New("glmirror: no canvas surface found")

	// ErrNoContext is returned when the surface refuses the configured
	// context kind.
	ErrNoContext = errors.New("glmirror: surface has no rendering context")

	// ErrSurfaceNotComparable is returned for a surface value that cannot
	// key the installation table, such as a struct holding a map.
	ErrSurfaceNotComparable = errors.New("glmirror: surface is not comparable")
)

// installations maps every installed surface to its Installation. It is
// shared by all layers, so a surface is wrapped at most once per process.
var installations = struct {
	mu sync.Mutex
	m  map[surface.Surface]*Installation
}{m: make(map[surface.Surface]*Installation)}

// Installed returns the installation for s, if s has been installed.
func Installed(s surface.Surface) (*Installation, bool) {
	if !hashable(s) {
		return nil, false
	}
	installations.mu.Lock()
	defer installations.mu.Unlock()
	inst, ok := installations.m[s]
	return inst, ok
}

func hashable(s surface.Surface) bool {
	return s != nil && reflect.ValueOf(s).Comparable()
}

// Layer installs mirrored contexts on surfaces. A surface is wrapped at
// most once however often it is installed, by this layer or any other,
// and however often its context is requested. The first installation of a
// surface fixes its configuration and logger.
//
// Layer is not safe for concurrent use.
type Layer struct {
	cfg    Config
	logger *slog.Logger
}

// NewLayer creates a Layer for cfg.
func NewLayer(cfg Config, opts ...Option) *Layer {
	var o layerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Layer{
		cfg:    cfg,
		logger: o.logger,
	}
}

// Install is shorthand for NewLayer(cfg, opts...).Install(doc). Calling it
// again for the same document returns the existing Installation.
func Install(doc surface.Document, cfg Config, opts ...Option) (*Installation, error) {
	return NewLayer(cfg, opts...).Install(doc)
}

func (l *Layer) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return Logger()
}

// Config returns the layer configuration.
func (l *Layer) Config() Config {
	return l.cfg
}

// Install wraps the context of the first surface in doc.
//
// The real context is acquired once, with the configured kind, and wrapped
// in a Context. Installing again on a document whose first surface is
// already installed returns the existing Installation, whichever layer
// created it. When the aspect
// ratio is not AspectRatioDisabled the surface is centered, fitted to the
// viewport and refitted on every viewport resize.
//
// Install never panics on a missing surface or context; it logs and
// returns ErrNoSurface or ErrNoContext. A surface that cannot be compared
// gives ErrSurfaceNotComparable.
func (l *Layer) Install(doc surface.Document) (*Installation, error) {
	if !l.cfg.Enabled {
		l.log().Debug("glmirror: installation skipped", "reason", "disabled")
		return nil, ErrDisabled
	}
	if err := l.cfg.Validate(); err != nil {
		return nil, err
	}

	surfaces := doc.Surfaces()
	if len(surfaces) == 0 {
		l.log().Warn("glmirror: no canvas surface found")
		return nil, ErrNoSurface
	}
	s := surfaces[0]
	if !hashable(s) {
		l.log().Warn("glmirror: surface is not comparable", "type", fmt.Sprintf("%T", s))
		return nil, fmt.Errorf("%w: %T", ErrSurfaceNotComparable, s)
	}

	installations.mu.Lock()
	defer installations.mu.Unlock()
	if inst, ok := installations.m[s]; ok {
		return inst, nil
	}

	raw := s.GetContext(l.cfg.ContextKind)
	if raw == nil {
		l.log().Warn("glmirror: surface has no rendering context", "kind", l.cfg.ContextKind)
		return nil, fmt.Errorf("%w: kind %q", ErrNoContext, l.cfg.ContextKind)
	}
	ctx, ok := raw.(*Context)
	if !ok {
		ctx = NewContext(raw)
	}

	inst := &Installation{
		Surface: s,
		layer:   l,
		ctx:     ctx,
	}
	if l.cfg.ResizeEnabled() {
		inst.resizer = newResizer(s, doc.Viewport(), l.cfg.AspectRatio, l.log())
		inst.resizer.attach(doc.Events())
	}
	installations.m[s] = inst
	return inst, nil
}

// Installation is an installed surface. It is a drop-in replacement for
// the wrapped surface: every method is the surface's own except GetContext,
// which always returns the mirrored context.
type Installation struct {
	surface.Surface

	layer     *Layer
	ctx       *Context
	resizer   *Resizer
	announced bool
}

// GetContext returns the mirrored context whatever kind is requested.
// The first call logs that the mirror is enabled.
func (i *Installation) GetContext(kind string) gl.Context {
	if !i.announced {
		i.announced = true
		i.layer.log().Info("glmirror: enabled", "kind", kind)
	}
	return i.ctx
}

// Context returns the mirrored context without counting as an
// acquisition.
func (i *Installation) Context() *Context {
	return i.ctx
}

// Resizer returns the active resizer, or nil when resizing is disabled.
func (i *Installation) Resizer() *Resizer {
	return i.resizer
}
