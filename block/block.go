// SPDX-License-Identifier: MIT

// Package block - the Block container and its read-only accessors.
//
// Purpose:
//   - Hold exactly one payload (dense OR sparse) selected by the kind tag.
//   - Answer At/NonZeros/DoNonZero identically for both payloads.
//   - Keep the non-zero count cached so NonZeros is O(1).
//
// Complexity quicksheet:
//   - Rows/Cols/Shape/Kind/NonZeros: O(1).
//   - At: O(1) dense; O(k) sparse rows with k ≤ linearScanMax, O(log k) above.
//   - DoNonZero: O(r*c) dense, O(nnz + r) sparse.

package block

import (
	"slices"
)

// linearScanMax is the sparse row length up to which At scans linearly
// instead of binary searching.
const linearScanMax = 8

// sparseRow holds the non-zeros of one row: cols strictly increasing, vals non-zero.
type sparseRow struct {
	cols []int
	vals []float64
}

// lookup returns the value stored at col, or 0 when col is absent.
func (r sparseRow) lookup(col int) float64 {
	n := len(r.cols)
	if n <= linearScanMax {
		for k := 0; k < n; k++ {
			if r.cols[k] == col {
				return r.vals[k]
			}
			if r.cols[k] > col {
				break // sorted: col cannot appear later
			}
		}
		return 0
	}
	if k, found := slices.BinarySearch(r.cols, col); found {
		return r.vals[k]
	}

	return 0
}

// Block is an immutable matrix block.
//
// Immutability holds only while callers respect ownership: the slice handed to
// NewDense and the slices returned by RawDense and RawRow alias the block's
// storage. Writing through them changes the block and leaves NonZeros stale.
//
// Fields:
//   - kind selects which payload is live; the other one is nil.
//   - data: dense payload, len == Rows*Cols, row-major.
//   - rows: sparse payload, len == Rows.
//   - nnz: exact count of non-zero cells, fixed at construction.
type Block struct {
	shape Shape
	kind  Kind
	data  []float64
	rows  []sparseRow
	nnz   int
}

// Rows returns the number of rows.
func (b *Block) Rows() int { return b.shape.Rows }

// Cols returns the number of columns.
func (b *Block) Cols() int { return b.shape.Cols }

// Shape returns the (rows, cols) pair.
func (b *Block) Shape() Shape { return b.shape }

// Kind returns the storage tag.
func (b *Block) Kind() Kind { return b.kind }

// NonZeros returns the number of non-zero cells. NaN counts as non-zero.
// Complexity: O(1); the count is fixed when the block is built.
func (b *Block) NonZeros() int { return b.nnz }

// Density returns NonZeros / (Rows*Cols), or 0 for an empty shape.
func (b *Block) Density() float64 {
	cells := b.shape.Cells()
	if cells == 0 {
		return 0
	}

	return float64(b.nnz) / float64(cells)
}

// checkBounds panics when (row, col) lies outside the block.
func (b *Block) checkBounds(row, col int) {
	if row < 0 || row >= b.shape.Rows {
		panic(panicRowOutOfRange)
	}
	if col < 0 || col >= b.shape.Cols {
		panic(panicColOutOfRange)
	}
}

// At returns the value at (row, col).
// Implementation:
//   - Stage 1: bounds check; violation panics (caller defect, not a data condition).
//   - Stage 2: dense → direct offset row*Cols+col; sparse → row lookup, 0 when absent.
//
// Complexity: O(1) dense, O(min(k, log k)) sparse for a row with k non-zeros.
func (b *Block) At(row, col int) float64 {
	b.checkBounds(row, col)
	if b.kind == Dense {
		return b.data[row*b.shape.Cols+col]
	}

	return b.rows[row].lookup(col)
}

// DoNonZero visits every non-zero cell in row-major order and calls f(i, j, v).
// Iteration stops early when f returns false.
//
// Complexity: O(r*c) for dense, O(r + nnz) for sparse.
func (b *Block) DoNonZero(f func(i, j int, v float64) bool) {
	if b.kind == Dense {
		c := b.shape.Cols
		var i, j, base int
		for i = 0; i < b.shape.Rows; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				if v := b.data[base+j]; v != 0 {
					if !f(i, j, v) {
						return
					}
				}
			}
		}
		return
	}

	for i, r := range b.rows {
		for k, j := range r.cols {
			if !f(i, j, r.vals[k]) {
				return
			}
		}
	}
}

// RowNonZeros returns copies of the column indices and values of the
// non-zeros in row i, columns increasing. Panics when i is out of range.
func (b *Block) RowNonZeros(i int) ([]int, []float64) {
	if i < 0 || i >= b.shape.Rows {
		panic(panicRowOutOfRange)
	}
	if b.kind == Sparse {
		return slices.Clone(b.rows[i].cols), slices.Clone(b.rows[i].vals)
	}

	var cols []int
	var vals []float64
	base := i * b.shape.Cols
	for j := 0; j < b.shape.Cols; j++ {
		if v := b.data[base+j]; v != 0 {
			cols = append(cols, j)
			vals = append(vals, v)
		}
	}

	return cols, vals
}

// countNonZero counts v != 0 over a dense payload.
func countNonZero(data []float64) int {
	n := 0
	for _, v := range data {
		if v != 0 {
			n++
		}
	}

	return n
}
