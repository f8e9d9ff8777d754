// Command fundamentals prints annotated walkthroughs of Go's core language
// features, one chapter at a time or all in a row.
//
// Run:
//
//	go run ./cmd/fundamentals              # every chapter
//	go run ./cmd/fundamentals run enums    # just one
//	go run ./cmd/fundamentals list
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
