// SPDX-License-Identifier: MIT

// Package block - shared read access for operator kernels.
//
// These accessors hand out the backing storage without copying. The block
// stays immutable only as long as callers treat the returned slices as
// read-only.

package block

// RawDense returns the row-major payload of a dense block, len Rows*Cols.
// The slice aliases the block and must not be modified.
// Panics when b is sparse.
func (b *Block) RawDense() []float64 {
	if b.kind != Dense {
		panic(panicNotDense)
	}

	return b.data
}

// RawRow returns the column indices and values stored for row i of a sparse
// block. Columns are strictly increasing and every value is non-zero.
// Both slices alias the block and must not be modified.
// Panics when b is dense or i is out of range.
func (b *Block) RawRow(i int) ([]int, []float64) {
	if b.kind != Sparse {
		panic(panicNotSparse)
	}
	if i < 0 || i >= b.shape.Rows {
		panic(panicRowOutOfRange)
	}
	r := b.rows[i]

	return r.cols, r.vals
}
