// SPDX-License-Identifier: MIT

// Package harness runs scenario suites against a binop.Engine.
//
// A Suite is a named list of Scenarios loaded from YAML. Each scenario
// describes two randomly generated operands (shape, value range, density,
// seed, storage encoding), the operator, and the expected outcome: either a
// result equal to the cell-by-cell reference within the suite tolerance, or
// a dimension mismatch. Suites are plain values passed into each run; the
// package keeps no registry.
//
// File layout:
//
//	name: elementwise-addition
//	tolerance: 1e-10
//	scenarios:
//	  - name: DenseTest
//	    op: add
//	    left:  {rows: 10, cols: 10, min: -1, max: 1, sparsity: 1, seed: 7}
//	    right: {rows: 10, cols: 10, min: -1, max: 1, sparsity: 1, seed: 8}
//	    expect: ok
//
// Unknown keys are rejected. A negative seed draws a time-based one, so the
// scenario is no longer reproducible.
package harness
