// SPDX-License-Identifier: MIT

// Package block - re-encoding and export.
//
// Re-encoding never mutates the receiver. When the receiver already has the
// requested kind it is returned as-is; sharing is safe because blocks are
// immutable.

package block

import (
	"fmt"
	"strings"
)

// Formatting literals for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// ToDense returns a dense encoding of b.
// Complexity: O(r*c) when b is sparse, O(1) otherwise.
func (b *Block) ToDense() *Block {
	if b.kind == Dense {
		return b
	}

	c := b.shape.Cols
	data := make([]float64, b.shape.Cells())
	for i, r := range b.rows {
		base := i * c
		for k, j := range r.cols {
			data[base+j] = r.vals[k]
		}
	}

	return newDenseCounted(b.shape.Rows, c, data, b.nnz)
}

// ToSparse returns a sparse encoding of b; zeros of a dense payload are dropped.
// Complexity: O(r*c) when b is dense, O(1) otherwise.
func (b *Block) ToSparse() *Block {
	if b.kind == Sparse {
		return b
	}

	bld := NewBuilder(b.shape.Rows, b.shape.Cols)
	c := b.shape.Cols
	var i, j, base int
	for i = 0; i < b.shape.Rows; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if v := b.data[base+j]; v != 0 {
				bld.Append(i, j, v)
			}
		}
	}

	return bld.Build()
}

// Encode returns b in the requested kind. Panics on an unknown kind.
func (b *Block) Encode(kind Kind) *Block {
	switch kind {
	case Dense:
		return b.ToDense()
	case Sparse:
		return b.ToSparse()
	default:
		panic(panicUnknownKind)
	}
}

// ToRows returns a freshly allocated row-major 2-D copy of the block.
func (b *Block) ToRows() [][]float64 {
	out := make([][]float64, b.shape.Rows)
	c := b.shape.Cols
	for i := range out {
		out[i] = make([]float64, c)
		if b.kind == Dense {
			copy(out[i], b.data[i*c:(i+1)*c])
			continue
		}
		for k, j := range b.rows[i].cols {
			out[i][j] = b.rows[i].vals[k]
		}
	}

	return out
}

// String renders one bracketed line per row. Intended for diagnostics.
func (b *Block) String() string {
	var sb strings.Builder
	for _, row := range b.ToRows() {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			sb.WriteString(fmt.Sprintf("%g", v))
			if j+1 < len(row) {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
