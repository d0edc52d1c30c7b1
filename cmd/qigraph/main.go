// SPDX-License-Identifier: MIT

// Command qigraph validates the qi invariant over graph files.
//
//	qigraph generate graphs/
//	qigraph run graphs/procedural/cycles/cycle_9.txt --seed 7
//	qigraph batch 'graphs/**/*.txt' --concurrency 8 --report-dir reports/
//	qigraph qi graphs/special/petersen.txt --labels 0,0,1,1,2,2,3,3,4,4
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errVerdict) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
