// SPDX-License-Identifier: MIT

package sparsity_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvblock/block"
	"github.com/katalvlaran/lvblock/sparsity"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, sparsity.DefaultThreshold, sparsity.Default().Threshold())
	require.Equal(t, sparsity.Default(), sparsity.New())
}

func TestChoose(t *testing.T) {
	t.Parallel()

	p := sparsity.Default()
	cases := []struct {
		name            string
		rows, cols, nnz int
		want            block.Kind
	}{
		{"all zero", 10, 10, 0, block.Sparse},
		{"at threshold", 10, 10, 10, block.Sparse},
		{"just above", 10, 10, 11, block.Dense},
		{"full", 10, 10, 100, block.Dense},
		{"empty rows", 0, 10, 0, block.Dense},
		{"empty cols", 10, 0, 0, block.Dense},
		{"0x0", 0, 0, 0, block.Dense},
		{"50x50 at 5%", 50, 50, 125, block.Sparse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.Choose(tc.rows, tc.cols, tc.nnz))
		})
	}
}

func TestChoose_BadNNZ_Panics(t *testing.T) {
	t.Parallel()

	p := sparsity.Default()
	require.Panics(t, func() { p.Choose(2, 2, -1) })
	require.Panics(t, func() { p.Choose(2, 2, 5) })
}

func TestChoose_InvalidShape_Panics(t *testing.T) {
	t.Parallel()

	p := sparsity.Default()
	half := 1 << (bits.UintSize / 2)
	require.Panics(t, func() { p.Choose(half, half, 0) }, "cell count wraps to 0")
	require.Panics(t, func() { p.Choose(math.MaxInt, 2, 1) })
	require.Panics(t, func() { p.Choose(-1, 4, 0) })
	require.Equal(t, block.Dense, p.Choose(math.MaxInt, 0, 0))
}

func TestWithThreshold(t *testing.T) {
	t.Parallel()

	p := sparsity.New(sparsity.WithThreshold(0.5))
	require.Equal(t, 0.5, p.Threshold())
	require.Equal(t, block.Sparse, p.Choose(2, 2, 2))

	// Last writer wins.
	p = sparsity.New(sparsity.WithThreshold(0.5), sparsity.WithThreshold(0))
	require.Equal(t, block.Dense, p.Choose(2, 2, 1))
	require.Equal(t, block.Sparse, p.Choose(2, 2, 0))

	p = sparsity.New(sparsity.WithThreshold(1))
	require.Equal(t, block.Sparse, p.Choose(2, 2, 4))

	for _, bad := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.Panics(t, func() { sparsity.WithThreshold(bad) }, "threshold %v", bad)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	p := sparsity.Default()

	nearlyEmpty := block.MustFromRows([][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	got := p.Apply(nearlyEmpty)
	require.Equal(t, block.Sparse, got.Kind())
	require.Equal(t, 1.0, got.At(2, 1))

	full := block.MustFromRows([][]float64{{1, 2}, {3, 4}}).ToSparse()
	got = p.Apply(full)
	require.Equal(t, block.Dense, got.Kind())
	require.Equal(t, full.ToRows(), got.ToRows())

	// Already in the chosen kind: returned as-is.
	dense := block.MustFromRows([][]float64{{1, 2}})
	require.Same(t, dense, p.Apply(dense))
}
