// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
)

// AspectRatioDisabled is the Config.AspectRatio value that leaves surface
// size and position to other code.
const AspectRatioDisabled = -1.0

// Configuration errors.
var (
	// ErrInvalidAspectRatio is returned for a ratio that is neither
	// positive and finite nor AspectRatioDisabled.
	ErrInvalidAspectRatio = errors.New("glmirror: invalid aspect ratio")

	// ErrEmptyContextKind is returned when Config.ContextKind is empty.
	ErrEmptyContextKind = errors.New("glmirror: empty context kind")
)

// Config controls installation.
type Config struct {
	// Enabled gates installation. When false, Install wraps nothing.
	Enabled bool `env:"GLMIRROR_ENABLED" envDefault:"true"`

	// AspectRatio is the width/height ratio the surface is kept at, or
	// AspectRatioDisabled.
	AspectRatio float64 `env:"GLMIRROR_ASPECT_RATIO" envDefault:"1.7777777777777777"`

	// ContextKind is the context type requested from the surface.
	ContextKind string `env:"GLMIRROR_CONTEXT_KIND" envDefault:"webgl2"`
}

// DefaultConfig returns an enabled configuration that keeps the surface at
// 16:9 and requests a "webgl2" context.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		AspectRatio: 16.0 / 9.0,
		ContextKind: "webgl2",
	}
}

// LoadConfig reads the configuration from GLMIRROR_* environment
// variables, falling back to the DefaultConfig values.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values Install cannot use.
func (c Config) Validate() error {
	if c.AspectRatio != AspectRatioDisabled &&
		(c.AspectRatio <= 0 || math.IsNaN(c.AspectRatio) || math.IsInf(c.AspectRatio, 0)) {
		return fmt.Errorf("%w: %v", ErrInvalidAspectRatio, c.AspectRatio)
	}
	if c.ContextKind == "" {
		return ErrEmptyContextKind
	}
	return nil
}

// ResizeEnabled reports whether Install manages the surface size.
func (c Config) ResizeEnabled() bool {
	return c.AspectRatio != AspectRatioDisabled
}
