// SPDX-License-Identifier: MIT
// Package block_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the block tests.

package block_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvblock/block"
)

// MustRows builds a dense block from a literal or fails the test.
func MustRows(t *testing.T, rows [][]float64) *block.Block {
	t.Helper()
	b, err := block.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return b
}

// RandRows returns an r×c literal where each cell is non-zero with
// probability density, values in [-1, 1). Deterministic for a fixed seed.
func RandRows(r, c int, density float64, seed int64) [][]float64 {
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

// CompareRows fails the test unless b holds exactly the values of want.
func CompareRows(t *testing.T, want [][]float64, b *block.Block) {
	t.Helper()
	if b.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), b.Rows())
	}
	for i := range want {
		if b.Cols() != len(want[i]) {
			t.Fatalf("cols: want %d, got %d", len(want[i]), b.Cols())
		}
		for j := range want[i] {
			if got := b.At(i, j); got != want[i][j] {
				t.Fatalf("at [%d,%d]: want %v, got %v", i, j, want[i][j], got)
			}
		}
	}
}

// countRows counts non-zeros of a literal.
func countRows(rows [][]float64) int {
	n := 0
	for _, row := range rows {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}

	return n
}
