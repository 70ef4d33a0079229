// SPDX-License-Identifier: MIT

package binop

import (
	"fmt"
	"math"
	"strings"
)

// Op is a binary elementwise operator.
type Op uint8

const (
	// Add computes a + b.
	Add Op = iota
	// Sub computes a - b.
	Sub
	// Mul computes the Hadamard product a * b.
	Mul
	// Min computes math.Min(a, b); NaN propagates.
	Min
	// Max computes math.Max(a, b); NaN propagates.
	Max

	numOps
)

var opNames = [numOps]string{
	Add: "Add",
	Sub: "Sub",
	Mul: "Mul",
	Min: "Min",
	Max: "Max",
}

// opFuncs holds the scalar function of every operator. Each one maps (0, 0) to 0.
var opFuncs = [numOps]func(x, y float64) float64{
	Add: func(x, y float64) float64 { return x + y },
	Sub: func(x, y float64) float64 { return x - y },
	Mul: func(x, y float64) float64 { return x * y },
	Min: math.Min,
	Max: math.Max,
}

// String returns the operator name, e.g. "Add".
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Valid reports whether op is a declared operator.
func (op Op) Valid() bool { return op < numOps }

// Elementwise reports whether op pairs cell (i, j) of one operand with cell
// (i, j) of the other, which requires identical shapes.
func (op Op) Elementwise() bool { return op.Valid() }

// Commutative reports whether op(a, b) == op(b, a) for all inputs.
func (op Op) Commutative() bool { return op.Valid() && op != Sub }

// fn returns the scalar function of op. Panics for an undeclared operator.
func (op Op) fn() func(x, y float64) float64 {
	if !op.Valid() {
		panic(panicUnknownOp)
	}

	return opFuncs[op]
}

// ParseOp resolves an operator name, case-insensitively ("add", "Add", "ADD").
// Errors: ErrUnknownOp.
func ParseOp(name string) (Op, error) {
	for op := Op(0); op < numOps; op++ {
		if strings.EqualFold(opNames[op], name) {
			return op, nil
		}
	}

	return 0, binopErrorf(opParseOp, fmt.Errorf("%q: %w", name, ErrUnknownOp))
}
