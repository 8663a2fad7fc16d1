package Trees

import "iter"

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is already present.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v isn't present.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//Height counts the nodes on the longest root to leaf path. An empty
	//tree has height 0 and a single element tree has height 1.
	Height() uint
	//Traverse returns a lazy sequence of the elements in the given Order,
	//or nil if o isn't a known Order.
	//The tree must not be modified while the sequence is being consumed.
	//Nothing detects such a modification; the elements produced afterwards are undefined.
	Traverse(o Order) iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the recorded size is wrong.
	Corrupt() bool
}

var _ Tree[int] = (*BST[int])(nil)
