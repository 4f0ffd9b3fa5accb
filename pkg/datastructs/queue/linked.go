package queue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

var _ Queue[int] = (*Linked[int])(nil)

// node represents a single node in the linked queue.
type node[T any] struct {
	item T
	next *node[T]
}

// Linked is an unbounded FIFO queue backed by a singly linked list.
// The zero value is an empty queue ready to use.
// It is NOT thread-safe.
type Linked[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
	mods  uint64 // bumped on every structural change, checked by iterators
}

// New creates an empty linked queue.
func New[T any]() *Linked[T] {
	return &Linked[T]{}
}

// IsEmpty returns true if the queue contains no items.
func (q *Linked[T]) IsEmpty() bool {
	return q.count == 0
}

// Size returns the number of items in the queue.
func (q *Linked[T]) Size() int {
	return q.count
}

// Len is an alias of Size.
func (q *Linked[T]) Len() int {
	return q.count
}

// Enqueue adds item to the tail in O(1).
func (q *Linked[T]) Enqueue(item T) {
	n := &node[T]{item: item}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.count++
	q.mods++
}

// Dequeue removes and returns the head item in O(1).
func (q *Linked[T]) Dequeue() (T, error) {
	var zero T
	front := q.popFront()
	if front == nil {
		return zero, errors.Wrap(ErrUnderflow, "dequeue")
	}
	return front.item, nil
}

// Peek returns the head item without removing it.
func (q *Linked[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, errors.Wrap(ErrUnderflow, "peek")
	}
	return q.head.item, nil
}

// Clear drops all items from the queue.
func (q *Linked[T]) Clear() {
	for q.popFront() != nil {
	}
}

// Iterator returns a one-pass iterator positioned at the head.
func (q *Linked[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{queue: q, current: q.head, mods: q.mods}
}

// All returns a sequence of the items from head to tail.
func (q *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := q.head; current != nil; current = current.next {
			if !yield(current.item) {
				return
			}
		}
	}
}

// String renders the items head to tail, each followed by a single space.
func (q *Linked[T]) String() string {
	var sb strings.Builder
	for current := q.head; current != nil; current = current.next {
		fmt.Fprint(&sb, current.item)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// popFront unlinks and returns the head node.
func (q *Linked[T]) popFront() *node[T] {
	if q.head == nil {
		return nil
	}

	front := q.head
	q.head = front.next
	if q.head == nil {
		q.tail = nil
	}

	front.next = nil
	q.count--
	q.mods++

	return front
}
