// SPDX-License-Identifier: MIT

// Package binop: engine configuration.
//
// Defaults:
//   - Policy: sparsity.Default() (threshold sparsity.DefaultThreshold).
//   - Logger: discards every record.

package binop

import (
	"log/slog"

	"github.com/katalvlaran/lvblock/sparsity"
)

// Option configures an Engine. Constructors panic only on nonsensical values.
type Option func(*Engine)

// WithPolicy sets the sparsity policy applied to every result.
func WithPolicy(p sparsity.Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithThreshold is shorthand for WithPolicy(sparsity.New(sparsity.WithThreshold(t))).
// Panics when t is NaN, ±Inf or outside [0, 1].
func WithThreshold(t float64) Option {
	return WithPolicy(sparsity.New(sparsity.WithThreshold(t)))
}

// WithLogger sets the logger for strategy and rejection records (Debug level).
// Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(e *Engine) { e.logger = l }
}
