// SPDX-License-Identifier: MIT

package batch

import "runtime"

const panicLimitInvalid = "batch: WithLimit: limit must be positive"

// Option configures Run.
type Option func(*config)

type config struct {
	limit int // > 0; defaults to GOMAXPROCS
}

// WithLimit bounds the number of pairs executed at once. Panics when n < 1.
func WithLimit(n int) Option {
	if n < 1 {
		panic(panicLimitInvalid)
	}

	return func(c *config) { c.limit = n }
}

func gatherOptions(opts ...Option) config {
	c := config{limit: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
