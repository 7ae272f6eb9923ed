// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

import "log/slog"

// Option configures a Layer during creation.
//
// Example:
//
//	layer := glmirror.NewLayer(cfg, glmirror.WithLogger(slog.Default()))
type Option func(*layerOptions)

// layerOptions holds optional configuration for Layer creation.
type layerOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger a Layer and its installations write to.
// Without it they use the package logger (see SetLogger) at the time of
// each log call.
func WithLogger(l *slog.Logger) Option {
	return func(o *layerOptions) {
		o.logger = l
	}
}
