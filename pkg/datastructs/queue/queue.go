package queue

import "github.com/pkg/errors"

var (
	// ErrUnderflow is returned by Dequeue and Peek on an empty queue.
	ErrUnderflow = errors.New("queue underflow")

	// ErrExhausted is returned when an iterator is advanced past the tail.
	ErrExhausted = errors.New("iterator exhausted")

	// ErrUnsupported is returned by Iterator.Remove.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrConcurrentModification is returned when the queue changed under a live iterator.
	ErrConcurrentModification = errors.New("queue modified during iteration")
)

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item at the tail of the queue.
	Enqueue(item T)

	// Dequeue removes and returns the head item.
	// Returns ErrUnderflow if the queue is empty.
	Dequeue() (T, error)

	// Peek returns the head item without removing it.
	// Returns ErrUnderflow if the queue is empty.
	Peek() (T, error)

	// Size returns the number of queued items.
	Size() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool
}
