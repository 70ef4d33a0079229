// SPDX-License-Identifier: MIT

// Package block - representation-independent numeric comparison.

package block

import "math"

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds for every cell.
// Implementation:
//   - Stage 1: validate tolerances (finite; negatives are taken by absolute value),
//     non-nil operands and identical shapes.
//   - Stage 2: dense×dense compares flat payloads; any other pairing reads
//     cells through At, so a dense block and its sparse re-encoding compare equal.
//
// Behavior highlights:
//   - NaN is never close to anything, including NaN.
//   - +Inf is close only to +Inf, -Inf only to -Inf.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilBlock, ErrShapeMismatch.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Block, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, blockErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil || b == nil {
		return false, blockErrorf(opAllClose, ErrNilBlock)
	}
	if a.shape != b.shape {
		return false, blockErrorf(opAllClose, ErrShapeMismatch)
	}

	if a.kind == Dense && b.kind == Dense {
		for idx, av := range a.data {
			if !closeEnough(av, b.data[idx], rtol, atol) {
				return false, nil
			}
		}
		return true, nil
	}

	var i, j int
	for i = 0; i < a.shape.Rows; i++ {
		for j = 0; j < a.shape.Cols; j++ {
			if !closeEnough(a.At(i, j), b.At(i, j), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind AllClose.
func closeEnough(x, y, rtol, atol float64) bool {
	if x == y {
		return true // exact match, equal infinities included
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
