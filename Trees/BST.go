package Trees

import (
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree with no repeated values.
// Every element in the left subtree of a node is less than the node's element
// and every element in the right subtree is greater. The shape depends only on
// the order of insertions and removals, so the height D is O(n) in the worst case,
// e.g. when inserting sorted values, and O(log n) on average for random orders.
// The zero value is an empty tree ready to use. BST isn't safe for concurrent use.
// Float NaN can't be ordered and mustn't be inserted.
type BST[T constraints.Ordered] struct {
	root  *node[T] //nil iff count==0
	count uint     //number of nodes reachable from root
}

// New returns an empty BST.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() uint {
	return u.count
}

// IsEmpty [Tree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *BST[T]) IsEmpty() bool {
	return u.count == 0
}

// Clear drops every node.
func (u *BST[T]) Clear() {
	u.root, u.count = nil, 0
}

func (u *BST[T]) has(cur *node[T], v T) bool {
	if cur == nil {
		return false
	} else if v == cur.v {
		return true
	} else if v < cur.v {
		return u.has(cur.l, v)
	} else {
		return u.has(cur.r, v)
	}
}

// Has [Tree.Has]. Recursive.
// Time: O(D)
func (u *BST[T]) Has(v T) bool {
	return u.has(u.root, v)
}

// insert v as a new leaf in the subtree rooting at cur. cur is passed by
// reference so the leaf can be linked to its parent. v mustn't be in the subtree.
func (u *BST[T]) insert(curPtr **node[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T]{v: v}
	} else if v < cur.v {
		u.insert(&cur.l, v)
	} else {
		u.insert(&cur.r, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// Duplicates are rejected before the tree is touched.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	if u.Has(v) {
		return false
	}
	u.insert(&u.root, v)
	u.count++
	return true
}

// remove v from the subtree rooting at cur. cur is passed by reference.
// A node with at most one child is replaced by that child. A node with two
// children takes the value of its in-order successor, which is then removed
// from the right subtree instead; the successor has no left child so that
// second removal always splices.
func (u *BST[T]) remove(curPtr **node[T], v T) {
	cur := *curPtr
	if cur == nil {
		return
	}
	if v < cur.v {
		u.remove(&cur.l, v)
	} else if v > cur.v {
		u.remove(&cur.r, v)
	} else if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		cur.v = minNode(cur.r).v
		u.remove(&cur.r, cur.v)
	}
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	if !u.Has(v) {
		return false
	}
	u.remove(&u.root, v)
	u.count--
	return true
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BST[T]) Height() uint {
	return height(u.root)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minNode(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxNode(u.root).v, true
}

// corrupt checks that every value under cur lies strictly between lo and hi,
// where a nil bound is unbounded, and counts the nodes into n.
func corrupt[T constraints.Ordered](cur *node[T], lo, hi *T, n *uint) bool {
	if cur == nil {
		return false
	}
	*n++
	if (lo != nil && !(*lo < cur.v)) || (hi != nil && !(cur.v < *hi)) {
		return true
	}
	return corrupt(cur.l, lo, &cur.v, n) || corrupt(cur.r, &cur.v, hi, n)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	var n uint
	return corrupt(u.root, nil, nil, &n) || n != u.count || (u.root == nil) != (u.count == 0)
}
