// SPDX-License-Identifier: MIT

package binop

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvblock/block"
	"github.com/katalvlaran/lvblock/sparsity"
)

// Engine validates operands, dispatches to a kernel and applies a sparsity
// policy to the result. An Engine is immutable after NewEngine and safe for
// concurrent use.
type Engine struct {
	policy sparsity.Policy
	logger *slog.Logger
}

// NewEngine returns an Engine with the default policy and a discarding
// logger, then applies opts in order.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy: sparsity.Default(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Policy returns the sparsity policy applied to results.
func (e *Engine) Policy() sparsity.Policy { return e.policy }

// Execute computes op(a, b).
// Implementation:
//   - Stage 1: ValidateOperands; on failure no kernel runs and the error is
//     returned unchanged.
//   - Stage 2: StrategyFor(a.Kind(), b.Kind()) selects the kernel.
//   - Stage 3: the kernel output is re-encoded by the engine's policy.
//
// Behavior highlights:
//   - Operands are never modified; the result is a new block.
//   - The result has the operands' shape and depends only on their values,
//     not on their encodings.
//
// Errors: ErrNilOperand, ErrUnknownOp, *DimensionMismatchError.
// Complexity: see the kernels; O(r*c) worst case, O(r + nnz) for SparseSparse.
func (e *Engine) Execute(op Op, a, b *block.Block) (*block.Block, error) {
	if err := ValidateOperands(op, a, b); err != nil {
		e.logger.LogAttrs(context.Background(), slog.LevelDebug, "binop: operands rejected",
			slog.String("op", op.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s := StrategyFor(a.Kind(), b.Kind())
	out := e.policy.Apply(kernelFor(s)(op, a, b))

	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "binop: executed",
		slog.String("op", op.String()),
		slog.String("strategy", s.String()),
		slog.String("shape", out.Shape().String()),
		slog.String("result", out.Kind().String()),
		slog.Int("nnz", out.NonZeros()),
	)

	return out, nil
}

var defaultEngine = NewEngine()

// Execute runs op(a, b) on an Engine with default settings.
func Execute(op Op, a, b *block.Block) (*block.Block, error) {
	return defaultEngine.Execute(op, a, b)
}
