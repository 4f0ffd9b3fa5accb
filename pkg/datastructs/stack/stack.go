package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnderflow is returned by Pop and Peek on an empty stack.
var ErrUnderflow = errors.New("stack underflow")

type node[T any] struct {
	item T
	next *node[T]
}

// Linked is an unbounded LIFO stack backed by a singly linked list.
// It is NOT thread-safe.
type Linked[T any] struct {
	top   *node[T]
	count int
}

// New creates an empty stack.
func New[T any]() *Linked[T] {
	return &Linked[T]{}
}

// IsEmpty reports whether the stack is empty.
func (s *Linked[T]) IsEmpty() bool { return s.top == nil }

// Size returns the number of items on the stack.
func (s *Linked[T]) Size() int { return s.count }

// Push adds item on top.
func (s *Linked[T]) Push(item T) {
	s.top = &node[T]{item: item, next: s.top}
	s.count++
}

// Pop removes and returns the most recently pushed item.
func (s *Linked[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, errors.Wrap(ErrUnderflow, "pop")
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.count--
	return n.item, nil
}

// Peek returns the top item without removing it.
func (s *Linked[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, errors.Wrap(ErrUnderflow, "peek")
	}
	return s.top.item, nil
}

// All yields items from top to bottom.
func (s *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

// String renders items top to bottom, each followed by a single space.
func (s *Linked[T]) String() string {
	var sb strings.Builder
	for n := s.top; n != nil; n = n.next {
		fmt.Fprint(&sb, n.item)
		sb.WriteByte(' ')
	}
	return sb.String()
}
