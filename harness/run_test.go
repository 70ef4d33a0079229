// SPDX-License-Identifier: MIT

package harness_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvblock/binop"
	"github.com/katalvlaran/lvblock/block"
	"github.com/katalvlaran/lvblock/harness"
)

func loadSuite(t *testing.T) harness.Suite {
	t.Helper()
	s, err := harness.LoadSuiteFile(suitePath)
	require.NoError(t, err)

	return s
}

func TestRunAll_ElementwiseAdditionSuite(t *testing.T) {
	t.Parallel()

	s := loadSuite(t)
	sum, err := s.RunAll(binop.NewEngine())
	require.NoError(t, err)
	require.True(t, sum.Passed())
	require.Len(t, sum.Reports, len(s.Scenarios))
	require.NotEmpty(t, sum.RunID)

	byName := map[string]harness.Report{}
	for _, r := range sum.Reports {
		byName[r.Scenario] = r
	}

	assert.Equal(t, binop.DenseDense, byName["DenseTest"].Strategy)
	assert.Equal(t, block.Dense, byName["DenseTest"].ResultKind)
	assert.Equal(t, binop.SparseSparse, byName["SparseTest"].Strategy)
	assert.Equal(t, binop.SparseSparse, byName["EmptyTest"].Strategy)
	assert.Equal(t, block.Sparse, byName["EmptyTest"].ResultKind)
	assert.Zero(t, byName["EmptyTest"].NonZeros)
	assert.Equal(t, binop.Mixed, byName["MixedDenseSparse"].Strategy)
	assert.Equal(t, binop.Mixed, byName["MixedSparseDense"].Strategy)
	assert.Equal(t, binop.Mixed, byName["SubtractMixedOrder"].Strategy)
	assert.Equal(t, byName["SparseTest"].NonZeros, byName["SparseAsDense"].NonZeros)

	rejected := 0
	for _, r := range sum.Reports {
		if r.Rejected {
			rejected++
		}
	}
	assert.Equal(t, 8, rejected)
}

func TestRunAll_DenseThreshold(t *testing.T) {
	t.Parallel()

	// Threshold 0: auto encoding stores every non-empty operand dense.
	sum, err := loadSuite(t).RunAll(binop.NewEngine(binop.WithThreshold(0)))
	require.NoError(t, err)
	for _, r := range sum.Reports {
		if r.Scenario == "SparseTest" {
			require.Equal(t, binop.DenseDense, r.Strategy)
		}
	}
}

func TestRunAll_LogsAndRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sum, err := loadSuite(t).RunAll(binop.NewEngine(), harness.WithLogger(logger), harness.WithRunID("run-1"))
	require.NoError(t, err)
	require.Equal(t, "run-1", sum.RunID)
	require.Contains(t, buf.String(), "run_id=run-1")
	require.Contains(t, buf.String(), "scenario=WrongDimensionLessRowsTest")
	require.Contains(t, buf.String(), "rejected=8")

	require.Panics(t, func() { harness.WithLogger(nil) })
}

func TestRun_ExpectationFailures(t *testing.T) {
	t.Parallel()

	eng := binop.NewEngine()
	square := harness.MatrixSpec{Rows: 4, Cols: 4, Min: -1, Max: 1, Sparsity: 1, Seed: 1, Encoding: harness.EncodingAuto}
	tall := square
	tall.Rows = 5

	// Expects a mismatch, shapes agree.
	_, err := harness.Run(eng, harness.Scenario{Name: "x", Op: "add", Left: square, Right: square, Expect: harness.ExpectDimensionMismatch}, 1e-10)
	require.ErrorIs(t, err, harness.ErrExpectationFailed)

	// Expects success, shapes disagree: both categories are visible.
	_, err = harness.Run(eng, harness.Scenario{Name: "y", Op: "add", Left: tall, Right: square, Expect: harness.ExpectOK}, 1e-10)
	require.ErrorIs(t, err, harness.ErrExpectationFailed)
	require.ErrorIs(t, err, binop.ErrDimensionMismatch)

	bad := square
	bad.Sparsity = 2
	_, err = harness.Run(eng, harness.Scenario{Name: "z", Op: "add", Left: bad, Right: square}, 1e-10)
	require.ErrorIs(t, err, harness.ErrInvalidProbability)

	_, err = harness.Run(eng, harness.Scenario{Name: "w", Op: "pow", Left: square, Right: square}, 1e-10)
	require.ErrorIs(t, err, harness.ErrInvalidSuite)
}

func TestRunAll_CollectsFailures(t *testing.T) {
	t.Parallel()

	square := harness.MatrixSpec{Rows: 3, Cols: 3, Min: -1, Max: 1, Sparsity: 1, Seed: 1, Encoding: harness.EncodingDense}
	s := harness.Suite{
		Name:      "mixed-outcomes",
		Tolerance: lo.ToPtr(1e-10),
		Scenarios: []harness.Scenario{
			{Name: "fails", Op: "add", Left: square, Right: square, Expect: harness.ExpectDimensionMismatch},
			{Name: "passes", Op: "sub", Left: square, Right: square, Expect: harness.ExpectOK},
		},
	}
	sum, err := s.RunAll(binop.NewEngine())
	require.ErrorIs(t, err, harness.ErrExpectationFailed)
	require.False(t, sum.Passed())
	require.Len(t, sum.Failures, 1)
	require.Len(t, sum.Reports, 2)
	require.Zero(t, sum.Reports[1].NonZeros, "a - a")
}
