package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-bst/Queues"
)

// Order selects a traversal strategy for Traverse.
type Order uint8

const (
	PreOrder   Order = iota // node, left subtree, right subtree
	InOrder                 // left subtree, node, right subtree; ascending
	PostOrder               // left subtree, right subtree, node
	LevelOrder              // breadth first, left to right
)

var orderNames = [...]string{"PRE_ORDER", "IN_ORDER", "POST_ORDER", "LEVEL_ORDER"}

func (o Order) Valid() bool {
	return o <= LevelOrder
}

func (o Order) String() string {
	if o.Valid() {
		return orderNames[o]
	}
	return "UNKNOWN_ORDER"
}

// ParseOrder maps the names returned by Order.String back to their Order.
func ParseOrder(s string) (Order, bool) {
	for i, n := range orderNames {
		if n == s {
			return Order(i), true
		}
	}
	return 0, false
}

// Traverse [Tree.Traverse]
func (u *BST[T]) Traverse(o Order) iter.Seq[T] {
	switch o {
	case PreOrder:
		return u.PreOrderSeq()
	case InOrder:
		return u.InOrderSeq()
	case PostOrder:
		return u.PostOrderSeq()
	case LevelOrder:
		return u.LevelOrderSeq()
	default:
		return nil
	}
}

// PreOrderSeq yields the elements in pre-order using an explicit stack. The right
// child is pushed before the left one so the left subtree comes out first.
// Time: O(1) amortized per element; Space: O(D)
func (u *BST[T]) PreOrderSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for st := []*node[T]{u.root}; len(st) > 0; {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			if cur.r != nil {
				st = append(st, cur.r)
			}
			if cur.l != nil {
				st = append(st, cur.l)
			}
		}
	}
}

// InOrderSeq yields the elements in ascending order. Every node on the way down
// the left spine is stacked; after a node is popped and yielded the descent
// restarts from its right child.
// Time: O(1) amortized per element; Space: O(D)
func (u *BST[T]) InOrderSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		var st []*node[T]
		for cur := u.root; cur != nil || len(st) > 0; {
			for ; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			cur = cur.r
		}
	}
}

// PostOrderSeq yields the elements in post-order. The first pass fills st2 in
// reverse post-order; the second pops it.
// Time: O(n) before the first element; Space: O(n)
func (u *BST[T]) PostOrderSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		st1, st2 := []*node[T]{u.root}, make([]*node[T], 0, u.count)
		for len(st1) > 0 {
			cur := st1[len(st1)-1]
			st1 = st1[:len(st1)-1]
			st2 = append(st2, cur)
			if cur.l != nil {
				st1 = append(st1, cur.l)
			}
			if cur.r != nil {
				st1 = append(st1, cur.r)
			}
		}
		for i := len(st2) - 1; i > -1; i-- {
			if !yield(st2[i].v) {
				return
			}
		}
	}
}

// LevelOrderSeq yields the elements breadth first, left to right within a level.
// Time: O(1) amortized per element; Space: O(width)
func (u *BST[T]) LevelOrderSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		q := Queues.MakeArrayQueue[*node[T]](8)
		q.Push(u.root)
		for !q.Empty() {
			cur, _ := q.Pop()
			if !yield(cur.v) {
				return
			}
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
}
