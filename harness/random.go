// SPDX-License-Identifier: MIT
// Package harness: random operand generation.
//
// Contract:
//   - rows, cols ≥ 0 and rows*cols within int (else ErrBadSize).
//   - lo ≤ hi, both finite (else ErrInvalidRange).
//   - 0 ≤ density ≤ 1 (else ErrInvalidProbability).
//
// Determinism:
//   - One Bernoulli trial per cell in fixed i→j order, followed by one value
//     draw when the trial succeeds. A fixed seed yields the same matrix.

package harness

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvblock/block"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// RandomMatrix returns a rows×cols literal in which each cell is non-zero
// with probability density, drawn uniformly from [lo, hi).
//
// Behavior highlights:
//   - density 1 fills every cell, density 0 none.
//   - A drawn value of exactly 0 stays 0; it only lowers the realized density.
//   - seed < 0 seeds from the clock.
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func RandomMatrix(rows, cols int, lo, hi, density float64, seed int64) ([][]float64, error) {
	if s := (block.Shape{Rows: rows, Cols: cols}); !s.Valid() {
		return nil, harnessErrorf(opRandomMatrix, fmt.Errorf("%s: %w", s, ErrBadSize))
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return nil, harnessErrorf(opRandomMatrix, fmt.Errorf("[%g, %g): %w", lo, hi, ErrInvalidRange))
	}
	if !(density >= probMin && density <= probMax) {
		return nil, harnessErrorf(opRandomMatrix, fmt.Errorf("density=%g not in [%.1f,%.1f]: %w", density, probMin, probMax, ErrInvalidProbability))
	}
	if seed < 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	span := hi - lo
	out := make([][]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			if rng.Float64() < density {
				out[i][j] = lo + span*rng.Float64()
			}
		}
	}

	return out, nil
}
