// SPDX-License-Identifier: MIT
// Package harness: expected results and comparison.
//
// Reference is a plain cell loop over [][]float64 literals and shares no code
// with the engine's kernels.

package harness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvblock/binop"
	"github.com/katalvlaran/lvblock/block"
)

// DefaultTolerance is the absolute per-cell tolerance used when a suite sets none.
const DefaultTolerance = 1e-10

// Reference computes op(a, b) cell by cell.
// Errors: ErrShapeMismatch for differing or ragged literals, binop.ErrUnknownOp.
func Reference(op binop.Op, a, b [][]float64) ([][]float64, error) {
	if !op.Valid() {
		return nil, harnessErrorf(opReference, fmt.Errorf("%s: %w", op, binop.ErrUnknownOp))
	}
	if len(a) != len(b) {
		return nil, harnessErrorf(opReference, fmt.Errorf("rows %d vs %d: %w", len(a), len(b), ErrShapeMismatch))
	}

	out := make([][]float64, len(a))
	for i := range a {
		if len(a[i]) != len(b[i]) || len(a[i]) != len(a[0]) {
			return nil, harnessErrorf(opReference, fmt.Errorf("row %d: %w", i, ErrShapeMismatch))
		}
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = scalar(op, a[i][j], b[i][j])
		}
	}

	return out, nil
}

func scalar(op binop.Op, x, y float64) float64 {
	switch op {
	case binop.Add:
		return x + y
	case binop.Sub:
		return x - y
	case binop.Mul:
		return x * y
	case binop.Min:
		return math.Min(x, y)
	default: // binop.Max
		return math.Max(x, y)
	}
}

// Compare checks got against want cell by cell with absolute tolerance tol.
// NaN matches NaN and an infinity matches the same infinity.
// Errors: ErrShapeMismatch, ErrValueMismatch naming the first differing cell.
func Compare(want [][]float64, got *block.Block, tol float64) error {
	if got == nil {
		return harnessErrorf(opCompare, block.ErrNilBlock)
	}
	// A literal with no rows carries no column count; only rows are checked then.
	cols := got.Cols()
	if len(want) > 0 {
		cols = len(want[0])
	}
	if got.Rows() != len(want) || got.Cols() != cols {
		return harnessErrorf(opCompare, fmt.Errorf("want %dx%d, got %s: %w", len(want), cols, got.Shape(), ErrShapeMismatch))
	}

	var w, g float64
	for i := range want {
		if len(want[i]) != cols {
			return harnessErrorf(opCompare, fmt.Errorf("row %d: %w", i, ErrShapeMismatch))
		}
		for j := range want[i] {
			w, g = want[i][j], got.At(i, j)
			if !within(w, g, tol) {
				return harnessErrorf(opCompare, fmt.Errorf("cell (%d,%d): want %g, got %g: %w", i, j, w, g, ErrValueMismatch))
			}
		}
	}

	return nil
}

func within(w, g, tol float64) bool {
	if w == g || (math.IsNaN(w) && math.IsNaN(g)) {
		return true
	}

	return math.Abs(w-g) <= tol
}
