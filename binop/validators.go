// SPDX-License-Identifier: MIT
// Package binop: shape validation.
//
// Each composite validator follows a fixed sequence (NotNil → NotNil →
// shape rule) and stops at the first failure. Validation is pure and
// allocates only for the returned error.

package binop

import (
	"fmt"

	"github.com/katalvlaran/lvblock/block"
)

// Validate checks that shapes left and right are compatible under op.
// Implementation:
//   - Stage 1: reject undeclared operators.
//   - Stage 2: elementwise rule: rows equal AND cols equal.
//
// Behavior highlights:
//   - All eight ways two shapes can differ (rows smaller/larger × cols
//     smaller/equal/larger, minus the equal pair) produce one
//     *DimensionMismatchError. There is no broadcasting.
//   - The mismatch error is returned as-is (not wrapped) so its message
//     names the operator and both shapes.
//
// Errors: ErrUnknownOp, *DimensionMismatchError.
// Complexity: O(1).
func Validate(op Op, left, right block.Shape) error {
	if !op.Valid() {
		return binopErrorf(opValidate, fmt.Errorf("%s: %w", op, ErrUnknownOp))
	}
	if op.Elementwise() && left != right {
		return &DimensionMismatchError{Op: op, Left: left, Right: right}
	}

	return nil
}

// ValidateOperands is the composite NotNil(a) → NotNil(b) → Validate.
// Errors: ErrNilOperand, ErrUnknownOp, *DimensionMismatchError.
func ValidateOperands(op Op, a, b *block.Block) error {
	if a == nil {
		return binopErrorf(opValidateOperands, fmt.Errorf("left: %w", ErrNilOperand))
	}
	if b == nil {
		return binopErrorf(opValidateOperands, fmt.Errorf("right: %w", ErrNilOperand))
	}

	return Validate(op, a.Shape(), b.Shape())
}
