package Trees

// A node in the BST. A node owns both of its subtrees; there is no parent link.
// nil is the absent subtree.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// minNode is the left-most node under n, which is the in-order successor of n's
// parent when n is a right child. n mustn't be nil.
// Time: O(D); Space: O(1)
func minNode[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode is the right-most node under n. n mustn't be nil.
// Time: O(D); Space: O(1)
func maxNode[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// height of the subtree rooting at n, counting nodes. Recursive.
func height[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.l), height(n.r))
}
