package queue

import "github.com/pkg/errors"

// Iterator walks a Linked queue once, head to tail.
// Changing the queue while iterating invalidates the iterator.
type Iterator[T any] struct {
	queue   *Linked[T]
	current *node[T]
	mods    uint64
}

// HasNext reports whether Next would return another item.
func (it *Iterator[T]) HasNext() bool {
	return it.current != nil
}

// Next returns the next item and advances the iterator.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.mods != it.queue.mods {
		return zero, errors.WithStack(ErrConcurrentModification)
	}
	if it.current == nil {
		return zero, errors.WithStack(ErrExhausted)
	}

	item := it.current.item
	it.current = it.current.next
	return item, nil
}

// Remove is not supported and always returns ErrUnsupported.
func (it *Iterator[T]) Remove() error {
	return errors.Wrap(ErrUnsupported, "iterator remove")
}
