// SPDX-License-Identifier: MIT

// Package sparsity: functional configuration.

package sparsity

import "math"

// DefaultThreshold is the density at or below which results are stored sparse.
const DefaultThreshold = 0.1

const (
	panicThresholdInvalid = "sparsity: WithThreshold: threshold must be finite and within [0, 1]"
	panicNNZInvalid       = "sparsity: Choose: nnz must lie within [0, rows*cols]"
	panicShapeInvalid     = "sparsity: Choose: shape must be non-negative with rows*cols within int"
)

// Option mutates a Policy under construction.
type Option func(*Policy)

// WithThreshold sets the density threshold.
// Implementation:
//   - Stage 1: validate t is finite and 0 ≤ t ≤ 1.
//   - Stage 2: return a setter that writes t into the Policy.
//
// Behavior highlights:
//   - t = 0 stores only all-zero results sparse.
//   - t = 1 stores every non-empty result sparse.
//
// Errors:
//   - Panics with a stable message when t is invalid.
//
// Complexity: Time O(1), Space O(1).
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 || t > 1 {
		panic(panicThresholdInvalid)
	}

	return func(p *Policy) { p.threshold = t }
}
