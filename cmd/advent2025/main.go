// Command advent2025 runs the Advent of Code 2025 solvers. `advent2025
// run --day N` solves a single day, `advent2025 all` solves every day
// in order; inputs are read from the directory given by --input.
package main

import (
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
