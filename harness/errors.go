// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a negative generated-matrix dimension.
	ErrBadSize = errors.New("harness: invalid size")

	// ErrInvalidRange indicates a value range with min > max or a non-finite bound.
	ErrInvalidRange = errors.New("harness: invalid value range")

	// ErrInvalidProbability indicates a density outside [0, 1].
	ErrInvalidProbability = errors.New("harness: density must lie in [0, 1]")

	// ErrShapeMismatch indicates that an expected and an actual matrix differ in shape.
	ErrShapeMismatch = errors.New("harness: shape mismatch")

	// ErrValueMismatch indicates a cell outside the tolerance.
	ErrValueMismatch = errors.New("harness: value mismatch")

	// ErrExpectationFailed indicates an outcome other than the one the scenario expects.
	ErrExpectationFailed = errors.New("harness: expectation failed")

	// ErrInvalidSuite indicates a malformed suite document.
	ErrInvalidSuite = errors.New("harness: invalid suite")
)

const panicNilLogger = "harness: WithLogger: logger must not be nil"

// Operation tags.
const (
	opRandomMatrix = "RandomMatrix"
	opReference    = "Reference"
	opCompare      = "Compare"
	opLoadSuite    = "LoadSuite"
)

// harnessErrorf wraps err with an operation tag, preserving the sentinel via %w.
func harnessErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
