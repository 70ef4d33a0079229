// SPDX-License-Identifier: MIT
// Package block: sentinel error set.
//
// Every data-dependent failure of a constructor or comparison returns one of
// these sentinels, optionally wrapped with call-site context via blockErrorf.
// Callers MUST branch with errors.Is.
//
// Programming-contract violations (out-of-bounds At, out-of-order Builder
// appends, use of a built Builder) are NOT errors: they panic with one of the
// panic* messages below.

package block

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension
	// or a cell count that overflows int.
	ErrBadShape = errors.New("block: invalid shape")

	// ErrDataLength indicates that a dense payload does not hold exactly rows*cols values.
	ErrDataLength = errors.New("block: data length does not match shape")

	// ErrRaggedRows indicates that a 2-D literal has rows of different lengths.
	ErrRaggedRows = errors.New("block: ragged rows")

	// ErrOutOfRange indicates that an entry of a sparse stream lies outside the shape.
	ErrOutOfRange = errors.New("block: index out of range")

	// ErrDuplicateEntry indicates that a sparse stream names the same cell twice.
	ErrDuplicateEntry = errors.New("block: duplicate entry")

	// ErrShapeMismatch indicates that two blocks compared cell-by-cell differ in shape.
	ErrShapeMismatch = errors.New("block: shape mismatch")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to a comparison.
	ErrNaNInf = errors.New("block: NaN or Inf tolerance")

	// ErrNilBlock indicates that a nil *Block was passed where a value is required.
	ErrNilBlock = errors.New("block: nil block")
)

// Panic messages for contract violations (stable, grep-able).
const (
	panicRowOutOfRange = "block: row index out of range"
	panicColOutOfRange = "block: column index out of range"
	panicRowOrder      = "block: builder rows must be appended in non-decreasing order"
	panicColOrder      = "block: builder columns must be strictly increasing within a row"
	panicBuilderSealed = "block: builder already built"
	panicNegativeShape = "block: negative dimension"
	panicShapeOverflow = "block: cell count overflows int"
	panicUnknownKind   = "block: unknown storage kind"
	panicNotDense      = "block: dense payload requested from a sparse block"
	panicNotSparse     = "block: sparse row requested from a dense block"
)

// Operation tags used by blockErrorf.
const (
	opNewDense    = "NewDense"
	opFromRows    = "FromRows"
	opFromEntries = "FromEntries"
	opZeros       = "Zeros"
	opAllClose    = "AllClose"
)

// blockErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func blockErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
