// SPDX-License-Identifier: MIT

package block

// Test bridge for panic messages.
const (
	PanicShapeOverflow_TestOnly = panicShapeOverflow
)
