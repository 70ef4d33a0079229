// SPDX-License-Identifier: MIT
// Package binop: error categories.
//
// A shape mismatch is the one failure with structured attributes: it is
// reported as *DimensionMismatchError, which also satisfies
// errors.Is(err, ErrDimensionMismatch). The remaining sentinels are plain
// values wrapped with an operation tag.

package binop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvblock/block"
)

var (
	// ErrDimensionMismatch is the category of every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("binop: dimension mismatch")

	// ErrNilOperand indicates that a nil block was passed as an operand.
	ErrNilOperand = errors.New("binop: nil operand")

	// ErrUnknownOp indicates an operator outside the declared set.
	ErrUnknownOp = errors.New("binop: unknown operator")
)

// DimensionMismatchError reports operands whose shapes violate the
// operator's shape rule.
type DimensionMismatchError struct {
	Op    Op
	Left  block.Shape
	Right block.Shape
}

// Error renders "binop: <op>: dimension mismatch: left RxC, right RxC".
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("binop: %s: dimension mismatch: left %s, right %s", e.Op, e.Left, e.Right)
}

// Is makes errors.Is(err, ErrDimensionMismatch) hold.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// Panic messages for contract violations.
const (
	panicShapeContract   = "binop: kernel called with operands of different shapes"
	panicKindContract    = "binop: kernel called with operands of the wrong storage kinds"
	panicUnknownOp       = "binop: unknown operator"
	panicUnknownKind     = "binop: unknown storage kind"
	panicNilLogger       = "binop: WithLogger: logger must not be nil"
	panicUnknownStrategy = "binop: unknown strategy"
)

// Operation tags.
const (
	opValidate         = "Validate"
	opValidateOperands = "ValidateOperands"
	opParseOp          = "ParseOp"
)

// binopErrorf wraps err with an operation tag, preserving the sentinel via %w.
func binopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
