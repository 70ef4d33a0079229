// SPDX-License-Identifier: MIT

// Command blockharness runs YAML scenario suites against the elementwise
// operator engine and prints one line per scenario.
//
// Usage:
//
//	blockharness run [--threshold 0.1] [--verbose] suite.yaml [suite.yaml...]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
