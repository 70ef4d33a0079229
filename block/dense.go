// SPDX-License-Identifier: MIT

// Package block - dense constructors.
//
// Purpose:
//   - Build dense blocks from a flat row-major slice (ownership hand-off) or
//     from a 2-D literal (copy).
//   - Validate shape and payload length once; the block never re-validates.

package block

import "fmt"

// NewDense returns a dense rows×cols block backed by data.
// Implementation:
//   - Stage 1: validate rows, cols ≥ 0, rows*cols representable, and
//     len(data) == rows*cols.
//   - Stage 2: count non-zeros once and seal the block.
//
// Behavior highlights:
//   - data is NOT copied. The caller hands it over and must not write to it
//     afterwards; this is how operator kernels return their output without an
//     extra copy.
//   - Zero-sized shapes (0×n, n×0, 0×0) are legal with an empty data slice.
//
// Errors:
//   - ErrBadShape for negative dimensions or an overflowing cell count.
//   - ErrDataLength when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c) for the non-zero count, Space O(1).
func NewDense(rows, cols int, data []float64) (*Block, error) {
	if s := (Shape{Rows: rows, Cols: cols}); !s.Valid() {
		return nil, blockErrorf(opNewDense, fmt.Errorf("%s: %w", s, ErrBadShape))
	}
	if len(data) != rows*cols {
		return nil, blockErrorf(opNewDense, fmt.Errorf("len=%d, want %d: %w", len(data), rows*cols, ErrDataLength))
	}

	return newDenseCounted(rows, cols, data, countNonZero(data)), nil
}

// newDenseCounted seals a dense block whose non-zero count is already known.
func newDenseCounted(rows, cols int, data []float64, nnz int) *Block {
	return &Block{
		shape: Shape{Rows: rows, Cols: cols},
		kind:  Dense,
		data:  data,
		nnz:   nnz,
	}
}

// FromRows builds a dense block from a row-major 2-D literal.
// Every row must have the same length. The values are copied, so the caller
// keeps ownership of the literal. FromRows(nil) yields the 0×0 block.
//
// Errors: ErrRaggedRows when row lengths differ.
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Block, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	data := make([]float64, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, blockErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrRaggedRows))
		}
		copy(data[i*c:(i+1)*c], row)
	}

	return newDenseCounted(r, c, data, countNonZero(data)), nil
}

// MustFromRows is FromRows that panics on error. Intended for literals in
// tests and examples.
func MustFromRows(rows [][]float64) *Block {
	b, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return b
}
