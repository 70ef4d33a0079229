// SPDX-License-Identifier: MIT

// Package batch executes many independent block pairs concurrently.
//
// Blocks are immutable and an Engine holds no mutable state, so pairs are
// processed by a bounded errgroup with no locking inside the core. Results
// keep the order of the input; the first failing pair cancels the work that
// has not started yet.
package batch
