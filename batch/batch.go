// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvblock/binop"
	"github.com/katalvlaran/lvblock/block"
)

// ErrNilEngine is returned when Run is given a nil engine.
var ErrNilEngine = errors.New("batch: nil engine")

// Pair is one unit of work: Op applied to Left and Right.
type Pair struct {
	Op    binop.Op
	Left  *block.Block
	Right *block.Block
}

// Run executes every pair on eng and returns the results in input order.
// Implementation:
//   - Stage 1: resolve options; an empty input returns an empty result.
//   - Stage 2: an errgroup bounded by the limit runs one goroutine per pair;
//     each writes only its own result slot.
//   - Stage 3: Wait returns the first failure, wrapped with the pair index.
//
// Behavior highlights:
//   - A pair that has not started when the group's context is done is skipped
//     and reports ctx.Err(); pairs already running finish.
//   - Errors keep their category: errors.Is/As still match
//     binop.ErrDimensionMismatch and friends.
//
// Errors: ErrNilEngine, "batch: pair N: <cause>", context errors.
func Run(ctx context.Context, eng *binop.Engine, pairs []Pair, opts ...Option) ([]*block.Block, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	cfg := gatherOptions(opts...)
	out := make([]*block.Block, len(pairs))
	if len(pairs) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limit)
	for idx := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := pairs[idx]
			res, err := eng.Execute(p.Op, p.Left, p.Right)
			if err != nil {
				return fmt.Errorf("batch: pair %d: %w", idx, err)
			}
			out[idx] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
