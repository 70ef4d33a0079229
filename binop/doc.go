// SPDX-License-Identifier: MIT

// Package binop executes binary elementwise operators over matrix blocks.
//
// Overview:
//   - Op names the operator: Add, Sub, Mul (Hadamard), Min, Max. Every
//     operator maps (0, 0) to 0, so cells absent from both sparse operands
//     never need to be visited.
//   - Validate and ValidateOperands check operand shapes. Any difference in
//     rows or columns yields exactly one *DimensionMismatchError; there is no
//     broadcasting.
//   - Engine.Execute validates, picks a Strategy from the operand kinds,
//     runs the matching kernel and re-encodes the result through its
//     sparsity.Policy.
//
// Strategies:
//
//	left \ right   dense          sparse
//	dense          DenseDense     Mixed
//	sparse         Mixed          SparseSparse
//
// Determinism:
//   - Every kernel walks rows in order and columns in order. Results are
//     identical across runs and across operand encodings; NaN and ±Inf
//     propagate exactly as in a dense cell-by-cell loop.
//
// Concurrency:
//   - Blocks are immutable and an Engine holds no mutable state, so one
//     Engine may execute any number of disjoint pairs concurrently.
//
// Errors:
//   - ErrDimensionMismatch (typed: *DimensionMismatchError), ErrNilOperand,
//     ErrUnknownOp. Calling a kernel directly with unvalidated operands is a
//     programming error and panics.
package binop
