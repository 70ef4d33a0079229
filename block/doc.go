// SPDX-License-Identifier: MIT

// Package block provides the Matrix Block: an immutable, shape-tagged
// rectangle of float64 values stored either densely or sparsely.
//
// Representations:
//
//   - Dense: a flat row-major slice of Rows*Cols values (offset = i*Cols + j).
//   - Sparse: for each row, strictly increasing column indices paired with
//     their non-zero values. Zeros are never stored explicitly.
//
// Both representations answer the same value-access contract (At, NonZeros,
// DoNonZero), so consumers read a Block without caring which one it holds.
//
// Construction:
//
//   - FromRows builds a dense block from a 2-D literal (copy).
//   - NewDense hands a flat slice over to a new dense block (no copy).
//   - NewBuilder appends non-zeros row by row into a sparse block.
//   - FromEntries ingests an unordered (row, col, value) stream.
//
// Lifecycle: a Block is never mutated after construction. Any change, including
// re-encoding via ToDense/ToSparse, yields a new Block. This is what lets
// concurrent readers share Blocks without locks.
//
// Errors vs panics: data-dependent problems (ragged literals, duplicate or
// out-of-range stream entries) return sentinel errors from errors.go.
// Contract violations by the calling code (out-of-bounds At, out-of-order
// Builder appends) panic.
package block
