// Package comparisons checks and benchmarks Trees.BST against third-party ordered
// containers and hash sets. It only has tests.
package comparisons
