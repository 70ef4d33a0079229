// SPDX-License-Identifier: MIT

package sparsity

import "github.com/katalvlaran/lvblock/block"

// Policy selects the storage kind of operator results.
// The zero value is NOT the default policy (its threshold is 0); use Default or New.
type Policy struct {
	threshold float64
}

// New returns a Policy with DefaultThreshold, then applies opts in order
// (last writer wins).
func New(opts ...Option) Policy {
	p := Policy{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Default returns the policy with DefaultThreshold.
func Default() Policy { return New() }

// Threshold returns the density threshold.
func (p Policy) Threshold() float64 { return p.threshold }

// Choose returns the storage kind for a rows×cols result holding nnz non-zeros.
// Implementation:
//   - Stage 1: a shape no block can have (negative, or rows*cols overflowing int)
//     is a caller defect and panics.
//   - Stage 2: zero-sized shapes → Dense.
//   - Stage 3: validate 0 ≤ nnz ≤ rows*cols; a violation panics.
//   - Stage 4: density ≤ threshold → Sparse, otherwise Dense.
//
// Complexity: O(1).
func (p Policy) Choose(rows, cols, nnz int) block.Kind {
	shape := block.Shape{Rows: rows, Cols: cols}
	if !shape.Valid() {
		panic(panicShapeInvalid)
	}
	cells := shape.Cells()
	if cells == 0 {
		return block.Dense
	}
	if nnz < 0 || nnz > cells {
		panic(panicNNZInvalid)
	}
	if float64(nnz)/float64(cells) <= p.threshold {
		return block.Sparse
	}

	return block.Dense
}

// Apply re-encodes b into the kind Choose picks for it.
// b is returned unchanged when it already has that kind.
func (p Policy) Apply(b *block.Block) *block.Block {
	return b.Encode(p.Choose(b.Rows(), b.Cols(), b.NonZeros()))
}
