// Package main provides the twfix CLI tool for repairing Tailwind namespace prefixes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// rootCmd silences cobra's own error printing
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
