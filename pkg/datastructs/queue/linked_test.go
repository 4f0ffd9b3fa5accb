package queue

import (
	"errors"
	"slices"
	"testing"
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNew(t *testing.T) {
	q := New[string]()
	if q == nil {
		t.Fatal("New returned nil")
	}
	if !q.IsEmpty() {
		t.Error("new queue should be empty")
	}
	if q.Size() != 0 || q.Len() != 0 {
		t.Errorf("Size() = %d, Len() = %d, want 0", q.Size(), q.Len())
	}
}

func TestZeroValue(t *testing.T) {
	var q Linked[int]
	q.Enqueue(7)
	got, err := q.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue() error = %v", err)
	}
	if got != 7 {
		t.Errorf("Dequeue() = %d, want 7", got)
	}
}

// =============================================================================
// Enqueue / Dequeue Tests
// =============================================================================

func TestEnqueue(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		wantSize int
	}{
		{"single_item", []string{"Element 1"}, 1},
		{"two_items", []string{"Element 1", "Element 2"}, 2},
		{"duplicates", []string{"a", "a", "a"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New[string]()
			for _, item := range tt.items {
				q.Enqueue(item)
			}
			if got := q.Size(); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
			if q.IsEmpty() {
				t.Error("IsEmpty() = true after enqueue")
			}
		})
	}
}

func TestDequeue_FIFOOrder(t *testing.T) {
	q := New[string]()
	q.Enqueue("Element 1")
	q.Enqueue("Element 2")
	q.Enqueue("Element 3")

	for i, want := range []string{"Element 1", "Element 2", "Element 3"} {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue() error = %v", err)
		}
		if got != want {
			t.Errorf("Dequeue() = %q, want %q", got, want)
		}
		if q.Size() != 2-i {
			t.Errorf("Size() = %d, want %d", q.Size(), 2-i)
		}
	}
	if !q.IsEmpty() {
		t.Error("queue should be empty after draining")
	}
}

func TestDequeue_Empty(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Linked[int]
	}{
		{"new_queue", func() *Linked[int] { return New[int]() }},
		{"drained_queue", func() *Linked[int] {
			q := New[int]()
			q.Enqueue(1)
			_, _ = q.Dequeue()
			return q
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.setup()
			got, err := q.Dequeue()
			if !errors.Is(err, ErrUnderflow) {
				t.Errorf("Dequeue() err = %v, want ErrUnderflow", err)
			}
			if got != 0 {
				t.Errorf("Dequeue() = %d, want zero value", got)
			}
			if q.Size() != 0 {
				t.Errorf("Size() = %d, want 0", q.Size())
			}
		})
	}
}

func TestMixedOrder(t *testing.T) {
	q := New[string]()
	q.Enqueue("Element 1")
	q.Enqueue("Element 2")
	mustDequeue(t, q, "Element 1")

	q.Enqueue("Element 3")
	q.Enqueue("Element 4")
	mustDequeue(t, q, "Element 2")
	mustDequeue(t, q, "Element 3")

	q.Enqueue("Element 5")
	mustDequeue(t, q, "Element 4")
	mustDequeue(t, q, "Element 5")

	if !q.IsEmpty() {
		t.Error("queue should be empty")
	}
}

func TestReuseAfterEmpty(t *testing.T) {
	q := New[string]()
	q.Enqueue("Element 1")
	q.Enqueue("Element 2")
	mustDequeue(t, q, "Element 1")
	mustDequeue(t, q, "Element 2")

	q.Enqueue("New 1")
	q.Enqueue("New 2")
	if q.Size() != 2 {
		t.Errorf("Size() = %d, want 2", q.Size())
	}
	if got, _ := q.Peek(); got != "New 1" {
		t.Errorf("Peek() = %q, want %q", got, "New 1")
	}
}

func TestSize_EnqueueDequeueCounts(t *testing.T) {
	tests := []struct {
		name     string
		enqueues int
		dequeues int
	}{
		{"none", 0, 0},
		{"enqueue_only", 5, 0},
		{"partial_drain", 10, 4},
		{"full_drain", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New[int]()
			for i := 0; i < tt.enqueues; i++ {
				q.Enqueue(i)
			}
			for i := 0; i < tt.dequeues; i++ {
				if _, err := q.Dequeue(); err != nil {
					t.Fatalf("Dequeue() error = %v", err)
				}
			}
			want := tt.enqueues - tt.dequeues
			if q.Size() != want {
				t.Errorf("Size() = %d, want %d", q.Size(), want)
			}
			if q.IsEmpty() != (want == 0) {
				t.Errorf("IsEmpty() = %v with Size() = %d", q.IsEmpty(), want)
			}
		})
	}
}

func TestLargeVolume(t *testing.T) {
	const elements = 10000
	q := New[int]()
	for i := 0; i < elements; i++ {
		q.Enqueue(i)
	}
	if q.Size() != elements {
		t.Fatalf("Size() = %d, want %d", q.Size(), elements)
	}
	for i := 0; i < elements; i++ {
		got, err := q.Dequeue()
		if err != nil || got != i {
			t.Fatalf("Dequeue() = (%d, %v), want (%d, nil)", got, err, i)
		}
	}
	if !q.IsEmpty() {
		t.Error("queue should be empty")
	}
}

// =============================================================================
// Peek Tests
// =============================================================================

func TestPeek(t *testing.T) {
	q := New[string]()
	q.Enqueue("Element 1")
	q.Enqueue("Element 2")

	for i := 0; i < 2; i++ {
		got, err := q.Peek()
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}
		if got != "Element 1" {
			t.Errorf("Peek() = %q, want %q", got, "Element 1")
		}
	}
	if q.Size() != 2 {
		t.Errorf("Size() = %d after Peek, want 2", q.Size())
	}
}

func TestPeek_Empty(t *testing.T) {
	q := New[string]()
	if _, err := q.Peek(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("Peek() err = %v, want ErrUnderflow", err)
	}
}

// =============================================================================
// Clear Tests
// =============================================================================

func TestClear(t *testing.T) {
	q := New[int]()
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	q.Clear()
	if !q.IsEmpty() {
		t.Error("queue should be empty after Clear")
	}
	if q.head != nil || q.tail != nil {
		t.Error("head and tail should be nil after Clear")
	}
	q.Enqueue(9)
	mustDequeue(t, q, 9)
}

// =============================================================================
// String Tests
// =============================================================================

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"a"}, "a "},
		{"three", []string{"a", "b", "c"}, "a b c "},
		{"with_spaces", []string{"Element 1", "Element 2"}, "Element 1 Element 2 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New[string]()
			for _, item := range tt.items {
				q.Enqueue(item)
			}
			if got := q.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString_Numbers(t *testing.T) {
	q := New[float64]()
	q.Enqueue(1.5)
	q.Enqueue(2)
	if got := q.String(); got != "1.5 2 " {
		t.Errorf("String() = %q, want %q", got, "1.5 2 ")
	}
}

// =============================================================================
// Iterator Tests
// =============================================================================

func TestIterator_Order(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	it := q.Iterator()
	var got []int
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("iterated %v, want [1 2 3]", got)
	}

	if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() past end err = %v, want ErrExhausted", err)
	}
	if q.Size() != 3 {
		t.Errorf("iteration changed Size() to %d", q.Size())
	}
}

func TestIterator_Empty(t *testing.T) {
	it := New[int]().Iterator()
	if it.HasNext() {
		t.Error("HasNext() = true on empty queue")
	}
	if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() err = %v, want ErrExhausted", err)
	}
}

func TestIterator_Remove(t *testing.T) {
	q := New[string]()
	q.Enqueue("Element 1")
	it := q.Iterator()
	if err := it.Remove(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Remove() err = %v, want ErrUnsupported", err)
	}
	if q.Size() != 1 {
		t.Errorf("Remove changed Size() to %d", q.Size())
	}
}

func TestIterator_ConcurrentModification(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Linked[int])
	}{
		{"enqueue", func(q *Linked[int]) { q.Enqueue(4) }},
		{"dequeue", func(q *Linked[int]) { _, _ = q.Dequeue() }},
		{"clear", func(q *Linked[int]) { q.Clear() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New[int]()
			q.Enqueue(1)
			q.Enqueue(2)
			it := q.Iterator()
			tt.mutate(q)
			if _, err := it.Next(); !errors.Is(err, ErrConcurrentModification) {
				t.Errorf("Next() err = %v, want ErrConcurrentModification", err)
			}
		})
	}
}

func TestIterator_PeekDoesNotInvalidate(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	it := q.Iterator()
	_, _ = q.Peek()
	if v, err := it.Next(); err != nil || v != 1 {
		t.Errorf("Next() = (%d, %v), want (1, nil)", v, err)
	}
}

func TestAll(t *testing.T) {
	q := New[string]()
	for _, s := range []string{"a", "b", "c"} {
		q.Enqueue(s)
	}

	if got := slices.Collect(q.All()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("All() = %v, want [a b c]", got)
	}

	var first string
	for s := range q.All() {
		first = s
		break
	}
	if first != "a" {
		t.Errorf("first = %q, want %q", first, "a")
	}
}

// =============================================================================
// Helpers
// =============================================================================

func mustDequeue[T comparable](t *testing.T, q *Linked[T], want T) {
	t.Helper()
	got, err := q.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue() error = %v", err)
	}
	if got != want {
		t.Errorf("Dequeue() = %v, want %v", got, want)
	}
}
