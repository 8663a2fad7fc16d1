package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the head of the queue. Returns *EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the head without removing it. The second return value is false when empty.
	Peek() (T, bool)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
