// SPDX-License-Identifier: MIT

package binop

import "github.com/katalvlaran/lvblock/block"

// sparseSparse merges two sparse operands row by row.
// Implementation:
//   - Stage 1: contract checks (both sparse, same shape); violations panic.
//   - Stage 2: for each row, two cursors walk the increasing column lists.
//     A column present on one side only pairs with an implicit 0 on the
//     other; the operand order of op is kept.
//   - Stage 3: results are appended through a block.Builder, which drops
//     exact zeros (e.g. 5 + -5) so the output holds no explicit zero.
//
// Behavior highlights:
//   - Cells absent from both operands are never visited: op(0, 0) == 0.
//   - x*0 is still evaluated for a lone non-zero x, so Inf*0 = NaN survives.
//
// Complexity: Time O(r + nnz(a) + nnz(b)), Space O(r + nnz(out)).
func sparseSparse(op Op, a, b *block.Block) *block.Block {
	if a.Kind() != block.Sparse || b.Kind() != block.Sparse {
		panic(panicKindContract)
	}
	requireSameShape(a, b)

	f := op.fn()
	bld := block.NewBuilder(a.Rows(), a.Cols())

	var i, p, q int
	for i = 0; i < a.Rows(); i++ {
		ac, av := a.RawRow(i)
		bc, bv := b.RawRow(i)
		p, q = 0, 0
		for p < len(ac) || q < len(bc) {
			switch {
			case q == len(bc) || (p < len(ac) && ac[p] < bc[q]):
				bld.Append(i, ac[p], f(av[p], 0))
				p++
			case p == len(ac) || bc[q] < ac[p]:
				bld.Append(i, bc[q], f(0, bv[q]))
				q++
			default: // same column
				bld.Append(i, ac[p], f(av[p], bv[q]))
				p++
				q++
			}
		}
	}

	return bld.Build()
}
