// SPDX-License-Identifier: MIT

// Package block: storage tags and shapes.
//
// Kind is a closed tag over {Dense, Sparse}; dispatch on it is a plain switch
// or table lookup, never an interface method call. Shape is derived from a
// Block and exists only to be compared.

package block

import (
	"fmt"
	"math"
)

// Kind tags the physical representation of a Block.
type Kind uint8

const (
	// Dense stores every cell in a flat row-major slice.
	Dense Kind = iota
	// Sparse stores, per row, strictly increasing (column, value) pairs of non-zeros.
	Sparse
)

// NumKinds is the number of storage kinds; dispatch tables are sized by it.
const NumKinds = 2

// String returns "dense" or "sparse".
func (k Kind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k == Dense || k == Sparse }

// Shape is the (rows, cols) pair of a Block.
type Shape struct {
	Rows int
	Cols int
}

// Cells returns Rows*Cols. The product is exact only for a Valid shape.
func (s Shape) Cells() int { return s.Rows * s.Cols }

// Valid reports whether both dimensions are non-negative and Rows*Cols fits in an int.
func (s Shape) Valid() bool {
	if s.Rows < 0 || s.Cols < 0 {
		return false
	}

	return s.Cols == 0 || s.Rows <= math.MaxInt/s.Cols
}

// Empty reports whether the shape holds no cells.
func (s Shape) Empty() bool { return s.Rows == 0 || s.Cols == 0 }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
