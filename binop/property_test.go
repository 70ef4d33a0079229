// SPDX-License-Identifier: MIT

package binop_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvblock/binop"
	"github.com/katalvlaran/lvblock/block"
)

// drawPair draws two literals of one shape, each with its own zero share.
func drawPair(t *rapid.T) (a, b [][]float64) {
	r := rapid.IntRange(0, 9).Draw(t, "rows")
	c := rapid.IntRange(0, 14).Draw(t, "cols")

	return drawRows(t, r, c, "a"), drawRows(t, r, c, "b")
}

func drawRows(t *rapid.T, r, c int, label string) [][]float64 {
	zeroPct := rapid.IntRange(0, 100).Draw(t, label+".zeroPct")
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if rapid.IntRange(0, 99).Draw(t, label+".p") < zeroPct {
				continue
			}
			out[i][j] = rapid.Float64Range(-100, 100).Draw(t, label+".v")
		}
	}

	return out
}

func mustBlock(t *rapid.T, rows [][]float64, kind block.Kind) *block.Block {
	b, err := block.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return b.Encode(kind)
}

func TestProperty_ShapePreservedAndCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawPair(t)
		ka := rapid.SampledFrom(allKinds).Draw(t, "ka")
		kb := rapid.SampledFrom(allKinds).Draw(t, "kb")
		A, B := mustBlock(t, a, ka), mustBlock(t, b, kb)

		ab, err := binop.Execute(binop.Add, A, B)
		if err != nil {
			t.Fatalf("Add(A,B): %v", err)
		}
		ba, err := binop.Execute(binop.Add, B, A)
		if err != nil {
			t.Fatalf("Add(B,A): %v", err)
		}
		if ab.Shape() != A.Shape() {
			t.Fatalf("shape: got %v, want %v", ab.Shape(), A.Shape())
		}
		if diff := cmp.Diff(ab.ToRows(), ba.ToRows()); diff != "" {
			t.Fatalf("Add not commutative (-ab +ba):\n%s", diff)
		}
	})
}

func TestProperty_CrossRepresentationEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawPair(t)
		op := rapid.SampledFrom(allOps).Draw(t, "op")
		want := naive(op, a, b)

		for _, ka := range allKinds {
			for _, kb := range allKinds {
				got, err := binop.Execute(op, mustBlock(t, a, ka), mustBlock(t, b, kb))
				if err != nil {
					t.Fatalf("%s %s×%s: %v", op, ka, kb, err)
				}
				if diff := cmp.Diff(want, got.ToRows(), cmpopts.EquateNaNs(), cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("%s %s×%s (-want +got):\n%s", op, ka, kb, diff)
				}
				if got.Kind() == block.Sparse {
					got.DoNonZero(func(i, j int, v float64) bool {
						if v == 0 {
							t.Fatalf("explicit zero at (%d,%d)", i, j)
						}
						return true
					})
				}
			}
		}
	})
}

func TestProperty_MismatchNeverComputes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ra := rapid.IntRange(0, 6).Draw(t, "ra")
		ca := rapid.IntRange(0, 6).Draw(t, "ca")
		rb := rapid.IntRange(0, 6).Draw(t, "rb")
		cb := rapid.IntRange(0, 6).Draw(t, "cb")
		if ra == rb && ca == cb {
			t.Skip("equal shapes")
		}
		A := mustBlock(t, drawRows(t, ra, ca, "a"), rapid.SampledFrom(allKinds).Draw(t, "ka"))
		B := mustBlock(t, drawRows(t, rb, cb, "b"), rapid.SampledFrom(allKinds).Draw(t, "kb"))

		got, err := binop.Execute(binop.Add, A, B)
		if got != nil {
			t.Fatalf("partial result %v", got.Shape())
		}
		var dm *binop.DimensionMismatchError
		if !errors.As(err, &dm) || dm.Left != A.Shape() || dm.Right != B.Shape() {
			t.Fatalf("want *DimensionMismatchError(%v, %v), got %v", A.Shape(), B.Shape(), err)
		}
	})
}
