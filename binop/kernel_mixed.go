// SPDX-License-Identifier: MIT

package binop

import "github.com/katalvlaran/lvblock/block"

// mixed combines one dense and one sparse operand, in either order.
// Implementation:
//   - Stage 1: contract checks (exactly one dense operand, same shape).
//   - Stage 2: the dense payload is the base; a cursor over each sparse row
//     supplies the matching value or an implicit 0. When the dense operand
//     is on the right the arguments are swapped back, so Sub stays a - b.
//   - Stage 3: the output is dense; the engine's policy may re-encode it.
//
// Complexity: Time O(r*c), Space O(r*c).
func mixed(op Op, a, b *block.Block) *block.Block {
	var dense, sparse *block.Block
	denseLeft := a.Kind() == block.Dense
	switch {
	case denseLeft && b.Kind() == block.Sparse:
		dense, sparse = a, b
	case a.Kind() == block.Sparse && b.Kind() == block.Dense:
		dense, sparse = b, a
	default:
		panic(panicKindContract)
	}
	requireSameShape(a, b)

	f := op.fn()
	r, c := dense.Rows(), dense.Cols()
	d := dense.RawDense()
	res := make([]float64, len(d))

	var i, j, k, base int
	var s, x, y float64
	for i = 0; i < r; i++ {
		base = i * c
		cols, vals := sparse.RawRow(i)
		k = 0
		for j = 0; j < c; j++ {
			s = 0
			if k < len(cols) && cols[k] == j {
				s = vals[k]
				k++
			}
			x, y = d[base+j], s
			if !denseLeft {
				x, y = s, x
			}
			res[base+j] = f(x, y)
		}
	}

	return mustDense(r, c, res)
}
