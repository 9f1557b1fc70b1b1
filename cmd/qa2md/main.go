// Package main is the entry point for the qa2md CLI binary.
package main

import (
	"fmt"
	"os"

	"github.com/irahardianto/qa2md/cmd/qa2md/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
