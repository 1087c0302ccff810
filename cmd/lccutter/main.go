// Package main provides the lccutter binary, which prints Library of
// Congress Cutter numbers for words.
//
//	$ lccutter Cutter Smith
//	Cutter	.C88847
//	Smith	.S6584
//
// Without arguments words are read from standard input, one per line.
package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	Version = "1.0.5"
	appName = "lccutter"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, errWordsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
