// SPDX-License-Identifier: MIT

package binop_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvblock/binop"
	"github.com/katalvlaran/lvblock/block"
)

// randRows returns an r×c literal, each cell non-zero with probability
// density and drawn from [-1, 1). Deterministic for a fixed seed.
func randRows(r, c int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if rng.Float64() < density {
				out[i][j] = rng.Float64()*2 - 1
			}
		}
	}

	return out
}

// encode builds a block from rows in the requested kind.
func encode(t testing.TB, rows [][]float64, kind block.Kind) *block.Block {
	t.Helper()
	b, err := block.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return b.Encode(kind)
}

// naive is the cell-by-cell definition every kernel must reproduce.
func naive(op binop.Op, a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			x, y := a[i][j], b[i][j]
			switch op {
			case binop.Add:
				out[i][j] = x + y
			case binop.Sub:
				out[i][j] = x - y
			case binop.Mul:
				out[i][j] = x * y
			case binop.Min:
				out[i][j] = math.Min(x, y)
			case binop.Max:
				out[i][j] = math.Max(x, y)
			}
		}
	}

	return out
}

// approx compares matrices with a tight tolerance; NaNs compare equal.
var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-12),
	cmpopts.EquateNaNs(),
}

// requireRows fails unless got holds want (within approx).
func requireRows(t *testing.T, want [][]float64, got *block.Block) {
	t.Helper()
	if diff := cmp.Diff(want, got.ToRows(), approx); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

var allOps = []binop.Op{binop.Add, binop.Sub, binop.Mul, binop.Min, binop.Max}

var allKinds = []block.Kind{block.Dense, block.Sparse}
