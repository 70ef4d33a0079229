// SPDX-License-Identifier: MIT

package binop

// Test bridge for the unexported kernels and panic messages.
var (
	DenseDenseKernel   = denseDense
	SparseSparseKernel = sparseSparse
	MixedKernel        = mixed
)

const (
	PanicShapeContract_TestOnly = panicShapeContract
	PanicKindContract_TestOnly  = panicKindContract
	PanicNilLogger_TestOnly     = panicNilLogger
)
