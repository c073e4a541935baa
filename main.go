// Package main provides the entry point for bpsim.
// bpsim evaluates branch predictors against recorded branch traces.
//
// For the full CLI, use: go run ./cmd/bpsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("bpsim - Branch Predictor Evaluation")
	fmt.Println("")
	fmt.Println("Usage: bpsim [options] <trace_file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -o            File the raw results are appended to (default output.txt)")
	fmt.Println("  -config       Path to sweep configuration JSON or YAML file")
	fmt.Println("  -format       Console format: raw, table, csv, json or auto")
	fmt.Println("  -parallel     Number of configurations evaluated at once")
	fmt.Println("  -profile-top  Print the N most mispredicted branches of each predictor")
	fmt.Println("  -cpuprofile   Write a CPU profile to file")
	fmt.Println("  -v            Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/bpsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/bpsim' instead.")
	}
}
