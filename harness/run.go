// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/katalvlaran/lvblock/binop"
	"github.com/katalvlaran/lvblock/block"
	"github.com/katalvlaran/lvblock/sparsity"
)

// Report describes one executed scenario.
type Report struct {
	Scenario   string
	Strategy   binop.Strategy
	Rejected   bool       // the engine reported a dimension mismatch
	ResultKind block.Kind // meaningful only when !Rejected
	NonZeros   int
}

// Summary collects the reports of one suite run.
type Summary struct {
	RunID    string
	Suite    string
	Reports  []Report
	Failures []error
}

// Passed reports whether every scenario met its expectation.
func (s Summary) Passed() bool { return len(s.Failures) == 0 }

// Run generates the operands of sc, executes them on eng and checks the
// outcome against sc.Expect.
// Implementation:
//   - Stage 1: resolve the operator and generate both operands.
//   - Stage 2: encode each operand (auto defers to eng's policy).
//   - Stage 3: execute, then compare with Reference or assert the mismatch.
//
// Errors:
//   - Generation errors (ErrBadSize, ErrInvalidRange, ErrInvalidProbability).
//   - ErrExpectationFailed when the engine fails or succeeds unexpectedly;
//     the engine error, if any, is wrapped too.
//   - ErrValueMismatch / ErrShapeMismatch from Compare.
func Run(eng *binop.Engine, sc Scenario, tol float64) (Report, error) {
	rep := Report{Scenario: sc.Name}
	op, err := binop.ParseOp(sc.Op)
	if err != nil {
		return rep, fmt.Errorf("%s: %w: %w", sc.Name, ErrInvalidSuite, err)
	}

	a, err := generate(sc.Left)
	if err != nil {
		return rep, fmt.Errorf("%s: left: %w", sc.Name, err)
	}
	b, err := generate(sc.Right)
	if err != nil {
		return rep, fmt.Errorf("%s: right: %w", sc.Name, err)
	}
	A, err := encode(sc.Left, a, eng.Policy())
	if err != nil {
		return rep, fmt.Errorf("%s: left: %w", sc.Name, err)
	}
	B, err := encode(sc.Right, b, eng.Policy())
	if err != nil {
		return rep, fmt.Errorf("%s: right: %w", sc.Name, err)
	}
	rep.Strategy = binop.StrategyFor(A.Kind(), B.Kind())

	got, execErr := eng.Execute(op, A, B)

	switch sc.Expect {
	case ExpectDimensionMismatch:
		var dm *binop.DimensionMismatchError
		if !errors.As(execErr, &dm) || got != nil {
			return rep, fmt.Errorf("%s: want dimension mismatch, got %v: %w", sc.Name, execErr, ErrExpectationFailed)
		}
		rep.Rejected = true
		return rep, nil

	case ExpectOK, "":
		if execErr != nil {
			return rep, fmt.Errorf("%s: %w: %w", sc.Name, ErrExpectationFailed, execErr)
		}
		rep.ResultKind, rep.NonZeros = got.Kind(), got.NonZeros()
		want, err := Reference(op, a, b)
		if err != nil {
			return rep, fmt.Errorf("%s: %w", sc.Name, err)
		}
		if err = Compare(want, got, tol); err != nil {
			return rep, fmt.Errorf("%s: %w", sc.Name, err)
		}
		return rep, nil

	default:
		return rep, fmt.Errorf("%s: expect %q: %w", sc.Name, sc.Expect, ErrInvalidSuite)
	}
}

// RunAll runs every scenario in order and keeps going past failures.
// The returned error joins all failures (nil when the suite passed).
func (s Suite) RunAll(eng *binop.Engine, opts ...Option) (Summary, error) {
	cfg := gatherOptions(opts...)
	if cfg.runID == "" {
		cfg.runID = uuid.NewString()
	}
	log := cfg.logger.With(slog.String("run_id", cfg.runID), slog.String("suite", s.Name))
	ctx := context.Background()

	sum := Summary{RunID: cfg.runID, Suite: s.Name, Reports: make([]Report, 0, len(s.Scenarios))}
	tol := s.EffectiveTolerance()
	for _, sc := range s.Scenarios {
		rep, err := Run(eng, sc, tol)
		sum.Reports = append(sum.Reports, rep)
		if err != nil {
			sum.Failures = append(sum.Failures, err)
			log.LogAttrs(ctx, slog.LevelWarn, "scenario failed",
				slog.String("scenario", sc.Name),
				slog.Any("error", err),
			)
			continue
		}
		log.LogAttrs(ctx, slog.LevelInfo, "scenario passed",
			slog.String("scenario", sc.Name),
			slog.String("strategy", rep.Strategy.String()),
			slog.Bool("rejected", rep.Rejected),
			slog.Int("nnz", rep.NonZeros),
		)
	}

	log.LogAttrs(ctx, slog.LevelInfo, "suite finished",
		slog.Int("scenarios", len(sum.Reports)),
		slog.Int("rejected", lo.CountBy(sum.Reports, func(r Report) bool { return r.Rejected })),
		slog.Int("failures", len(sum.Failures)),
	)

	return sum, errors.Join(sum.Failures...)
}

func generate(ms MatrixSpec) ([][]float64, error) {
	return RandomMatrix(ms.Rows, ms.Cols, ms.Min, ms.Max, ms.Sparsity, ms.Seed)
}

// encode stores rows in the encoding ms asks for; EncodingAuto defers to p.
// The shape comes from ms so that 0×n operands keep their column count.
func encode(ms MatrixSpec, rows [][]float64, p sparsity.Policy) (*block.Block, error) {
	data := make([]float64, 0, ms.Rows*ms.Cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	b, err := block.NewDense(ms.Rows, ms.Cols, data)
	if err != nil {
		return nil, err
	}
	switch enc := ms.Encoding; enc {
	case EncodingDense:
		return b, nil
	case EncodingSparse:
		return b.ToSparse(), nil
	case EncodingAuto, "":
		return p.Apply(b), nil
	default:
		return nil, fmt.Errorf("encoding %q: %w", enc, ErrInvalidSuite)
	}
}
