// Command bstree builds a binary search tree from its arguments and prints
// lookups, removals, the tree's height and its traversals.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bstree:", err)
		os.Exit(1)
	}
}
