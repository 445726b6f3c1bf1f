// Command u8mapcheck model-checks the ordered byte map against a reference
// implementation using reproducible, seeded operation streams.
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
