// SPDX-License-Identifier: MIT

package harness

import "log/slog"

// Option configures RunAll.
type Option func(*runConfig)

type runConfig struct {
	logger *slog.Logger
	runID  string // empty: a fresh UUID per run
}

// WithLogger sets the logger receiving one record per scenario. Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(c *runConfig) { c.logger = l }
}

// WithRunID fixes the run identifier attached to the summary and log records.
func WithRunID(id string) Option {
	return func(c *runConfig) { c.runID = id }
}

func gatherOptions(opts ...Option) runConfig {
	c := runConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
