package Trees

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// ErrConcurrentModification matches every *ConcurrentModificationError through errors.Is.
var ErrConcurrentModification = errors.New("concurrent modification")

// ConcurrentModificationError is reported by Iterator when the tree's size
// changed after the Iterator was acquired.
type ConcurrentModificationError struct {
	Expected, Actual uint
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("Tree modified during iteration: size was %d, now %d.", e.Expected, e.Actual)
}

func (e *ConcurrentModificationError) Is(target error) bool {
	return target == ErrConcurrentModification
}

// Iterator walks a BST in pre-order and fails fast once the tree is modified.
// Modification is detected by comparing the tree's size with the size seen when
// the Iterator was acquired, so an insertion cancelled out by a removal between
// two steps goes unnoticed.
type Iterator[T constraints.Ordered] struct {
	tree     *BST[T]
	st       []*node[T]
	expected uint
	err      error
}

// Iterator returns a new fail-fast pre-order Iterator. Every call starts a fresh walk
// with its own state.
func (u *BST[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{tree: u, expected: u.count}
	if u.root != nil {
		it.st = append(make([]*node[T], 0, 8), u.root)
	}
	return it
}

// Next element of the walk. Returns false once the walk is exhausted or has failed;
// check Err to tell them apart. After the first failure every call returns false.
func (it *Iterator[T]) Next() (v T, has bool) {
	if it.err != nil {
		return
	}
	if it.tree.count != it.expected {
		it.err = &ConcurrentModificationError{it.expected, it.tree.count}
		it.st = nil
		return
	}
	if len(it.st) == 0 {
		return
	}
	cur := it.st[len(it.st)-1]
	it.st = it.st[:len(it.st)-1]
	if cur.r != nil {
		it.st = append(it.st, cur.r)
	}
	if cur.l != nil {
		it.st = append(it.st, cur.l)
	}
	return cur.v, true
}

// Err is nil unless the walk failed with a *ConcurrentModificationError.
func (it *Iterator[T]) Err() error {
	return it.err
}

// All ranges over a fresh Iterator. If the tree is modified during the loop
// the next step yields the zero value with the error, and the loop ends.
func (u *BST[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := u.Iterator()
		for v, has := it.Next(); has; v, has = it.Next() {
			if !yield(v, nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield(*new(T), err)
		}
	}
}
