// Command backyarddig plans the cheapest network of tunnels connecting every
// buried car in a backyard.
//
// Usage:
//
//	backyarddig [--method kruskal|prim] [--root N] [--verbose] <input> <output>
//
// The output path "-" writes to stdout. BACKYARDDIG_METHOD sets the default
// method when --method is not given.
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
