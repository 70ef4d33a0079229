// SPDX-License-Identifier: MIT

// Package lvblock is an in-memory engine for binary elementwise operators
// over matrix blocks stored dense or sparse.
//
// Packages:
//
//	block/     - immutable Block (dense row-major or per-row sparse), builder, conversions
//	sparsity/  - density threshold choosing the storage of every result
//	binop/     - operators, shape validation, the three execution strategies, Engine
//	batch/     - concurrent execution of many independent block pairs
//	harness/   - YAML scenario suites, random operands, reference results
//	cmd/blockharness - command-line runner for harness suites
//
// Quick start:
//
//	a := block.MustFromRows([][]float64{{1, 2}, {3, 4}})
//	b := block.MustFromRows([][]float64{{0, 0}, {0, 5}}).ToSparse()
//	c, err := binop.Execute(binop.Add, a, b) // mixed strategy, dense result
//
// Shapes must match exactly; any difference yields a
// *binop.DimensionMismatchError before a single cell is touched.
package lvblock
