// SPDX-License-Identifier: MIT

// Package sparsity decides whether a freshly produced block is stored dense
// or sparse.
//
// Overview:
//   - A Policy carries one number, the density threshold. A result whose
//     density nnz/(rows*cols) is at or below the threshold is stored sparse,
//     anything above is stored dense.
//   - Policies are plain values built with functional options. There is no
//     package-level mutable state; callers that need a different threshold
//     construct their own Policy and pass it along.
//
// Edge cases:
//   - Zero-sized shapes (0×n, n×0) are stored dense: there is nothing to
//     index and the empty dense payload is the cheaper encoding.
//
// Example:
//
//	p := sparsity.New(sparsity.WithThreshold(0.25))
//	kind := p.Choose(100, 100, 900) // block.Sparse
package sparsity
