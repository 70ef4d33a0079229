// SPDX-License-Identifier: MIT

package binop

import (
	"fmt"

	"github.com/katalvlaran/lvblock/block"
)

// Strategy names the kernel that combines a given pair of storage kinds.
type Strategy uint8

const (
	// DenseDense walks both flat payloads in one pass.
	DenseDense Strategy = iota
	// SparseSparse merges the two sorted non-zero lists of each row.
	SparseSparse
	// Mixed walks the dense operand and advances a cursor over the sparse one.
	Mixed

	numStrategies
)

// String returns "dense-dense", "sparse-sparse" or "mixed".
func (s Strategy) String() string {
	switch s {
	case DenseDense:
		return "dense-dense"
	case SparseSparse:
		return "sparse-sparse"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// strategyTable is indexed [left kind][right kind].
var strategyTable = [block.NumKinds][block.NumKinds]Strategy{
	block.Dense:  {block.Dense: DenseDense, block.Sparse: Mixed},
	block.Sparse: {block.Dense: Mixed, block.Sparse: SparseSparse},
}

// kernel combines two validated operands into an unencoded result.
type kernel func(op Op, a, b *block.Block) *block.Block

// kernelTable is indexed by Strategy.
var kernelTable = [numStrategies]kernel{
	DenseDense:   denseDense,
	SparseSparse: sparseSparse,
	Mixed:        mixed,
}

// StrategyFor returns the strategy for a left operand of kind a and a right
// operand of kind b. Panics on an undeclared kind.
func StrategyFor(a, b block.Kind) Strategy {
	if !a.Valid() || !b.Valid() {
		panic(panicUnknownKind)
	}

	return strategyTable[a][b]
}

// kernelFor returns the kernel implementing s.
func kernelFor(s Strategy) kernel {
	if s >= numStrategies {
		panic(panicUnknownStrategy)
	}

	return kernelTable[s]
}

// requireSameShape guards every kernel entry point.
func requireSameShape(a, b *block.Block) {
	if a.Shape() != b.Shape() {
		panic(panicShapeContract)
	}
}
