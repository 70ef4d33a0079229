// SPDX-License-Identifier: MIT

// Package block - sparse construction.
//
// Purpose:
//   - Builder: append non-zeros row by row; the only writer of sparse payloads.
//   - FromEntries: ingest an unordered entry stream (I/O collaborator boundary).
//   - Zeros: the all-zero sparse block.
//
// Invariant maintenance:
//   - The "no explicit zero" rule is enforced at Append, the single mutation
//     boundary. Every sparse block in the package is produced through it or
//     through ToSparse, which applies the same rule.

package block

import (
	"cmp"
	"fmt"
	"slices"
)

// Entry is one (row, col, value) element of a sparse stream.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// Builder accumulates non-zeros of a sparse block in row-major order.
// A Builder is single-use: after Build every method except Len panics.
type Builder struct {
	shape   Shape
	rows    []sparseRow
	lastRow int
	lastCol int
	nnz     int
	built   bool
}

// NewBuilder starts a sparse rows×cols block.
// Panics when rows or cols is negative or rows*cols overflows int.
func NewBuilder(rows, cols int) *Builder {
	if rows < 0 || cols < 0 {
		panic(panicNegativeShape)
	}
	if !(Shape{Rows: rows, Cols: cols}).Valid() {
		panic(panicShapeOverflow)
	}

	return &Builder{
		shape:   Shape{Rows: rows, Cols: cols},
		rows:    make([]sparseRow, rows),
		lastRow: -1,
		lastCol: -1,
	}
}

// Append records value v at (row, col).
// Implementation:
//   - Stage 1: contract checks, all panicking: builder not built, indices in
//     range, row ≥ previous row, col > previous col when the row repeats.
//   - Stage 2: skip v == 0 (implicit zero); otherwise push (col, v) onto the row.
//
// Behavior highlights:
//   - Ordering is checked against every call, including skipped zeros, so a
//     caller cannot interleave out-of-order appends behind a zero.
//   - NaN and ±Inf are stored: they are non-zero.
//
// Complexity: amortized O(1).
func (bld *Builder) Append(row, col int, v float64) {
	if bld.built {
		panic(panicBuilderSealed)
	}
	if row < 0 || row >= bld.shape.Rows {
		panic(panicRowOutOfRange)
	}
	if col < 0 || col >= bld.shape.Cols {
		panic(panicColOutOfRange)
	}
	if row < bld.lastRow {
		panic(panicRowOrder)
	}
	if row == bld.lastRow && col <= bld.lastCol {
		panic(panicColOrder)
	}
	bld.lastRow, bld.lastCol = row, col

	if v == 0 {
		return
	}
	r := &bld.rows[row]
	r.cols = append(r.cols, col)
	r.vals = append(r.vals, v)
	bld.nnz++
}

// Len returns the number of non-zeros appended so far.
func (bld *Builder) Len() int { return bld.nnz }

// Build seals the builder and returns the sparse block. The builder's storage
// moves into the block; further Append or Build calls panic.
func (bld *Builder) Build() *Block {
	if bld.built {
		panic(panicBuilderSealed)
	}
	bld.built = true

	return &Block{
		shape: bld.shape,
		kind:  Sparse,
		rows:  bld.rows,
		nnz:   bld.nnz,
	}
}

// Zeros returns an all-zero sparse rows×cols block.
// Errors: ErrBadShape for negative dimensions or an overflowing cell count.
func Zeros(rows, cols int) (*Block, error) {
	if s := (Shape{Rows: rows, Cols: cols}); !s.Valid() {
		return nil, blockErrorf(opZeros, fmt.Errorf("%s: %w", s, ErrBadShape))
	}

	return NewBuilder(rows, cols).Build(), nil
}

// FromEntries builds a sparse block from an unordered entry stream.
// Implementation:
//   - Stage 1: validate shape and every coordinate.
//   - Stage 2: sort a copy by (row, col); reject repeated coordinates.
//   - Stage 3: feed the sorted stream through a Builder (drops zero values).
//
// Behavior highlights:
//   - entries is not modified.
//   - Unlike Builder.Append, bad input here is a data condition and is
//     returned as an error.
//
// Errors:
//   - ErrBadShape, ErrOutOfRange, ErrDuplicateEntry (wrapped with coordinates).
//
// Complexity:
//   - Time O(n log n) for n entries, Space O(n + rows).
func FromEntries(rows, cols int, entries []Entry) (*Block, error) {
	if s := (Shape{Rows: rows, Cols: cols}); !s.Valid() {
		return nil, blockErrorf(opFromEntries, fmt.Errorf("%s: %w", s, ErrBadShape))
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, blockErrorf(opFromEntries, fmt.Errorf("(%d,%d) in %dx%d: %w", e.Row, e.Col, rows, cols, ErrOutOfRange))
		}
	}

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	bld := NewBuilder(rows, cols)
	for k, e := range sorted {
		if k > 0 && sorted[k-1].Row == e.Row && sorted[k-1].Col == e.Col {
			return nil, blockErrorf(opFromEntries, fmt.Errorf("(%d,%d): %w", e.Row, e.Col, ErrDuplicateEntry))
		}
		bld.Append(e.Row, e.Col, e.Value)
	}

	return bld.Build(), nil
}
