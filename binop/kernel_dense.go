// SPDX-License-Identifier: MIT
// Package binop: dense × dense kernel.
//
// Fixed flat order 0..n-1 over the row-major payloads; one allocation for
// the output, which is handed to block.NewDense without a copy.

package binop

import "github.com/katalvlaran/lvblock/block"

// denseDense computes op over two dense operands of equal shape.
// Implementation:
//   - Stage 1: contract checks (both dense, same shape); violations panic.
//   - Stage 2: Add/Sub use one signed loop res = a + sign*b; other
//     operators go through their scalar function.
//
// Complexity: Time O(r*c), Space O(r*c).
func denseDense(op Op, a, b *block.Block) *block.Block {
	if a.Kind() != block.Dense || b.Kind() != block.Dense {
		panic(panicKindContract)
	}
	requireSameShape(a, b)

	da, db := a.RawDense(), b.RawDense()
	res := make([]float64, len(da))

	switch op {
	case Add, Sub:
		sign := 1.0
		if op == Sub {
			sign = -1.0
		}
		for idx := range res {
			res[idx] = da[idx] + sign*db[idx]
		}
	default:
		f := op.fn()
		for idx := range res {
			res[idx] = f(da[idx], db[idx])
		}
	}

	return mustDense(a.Rows(), a.Cols(), res)
}

// mustDense seals a kernel-owned payload. The length is correct by
// construction, so an error here is a kernel defect.
func mustDense(rows, cols int, data []float64) *block.Block {
	out, err := block.NewDense(rows, cols, data)
	if err != nil {
		panic(err)
	}

	return out
}
