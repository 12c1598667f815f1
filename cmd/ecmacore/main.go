// Command ecmacore is pure CLI glue over the compiler core — an
// engine-factory-style front end, not a script engine itself: dump an IR
// tree, dump a program-point type map, or show code-cache stats.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/ecmacore/cmd/ecmacore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
