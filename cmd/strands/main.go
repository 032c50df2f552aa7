// Command strands edits text in the terminal and draws an arrow between
// every pair of neighbouring letters whose trigram is common enough in the
// loaded word lists.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
