package stack

import (
	"errors"
	"slices"
	"testing"
)

// =============================================================================
// Push / Pop Tests
// =============================================================================

func TestPushPop_LIFOOrder(t *testing.T) {
	s := New[string]()
	for _, w := range []string{"to", "be", "or"} {
		s.Push(w)
	}
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}

	for _, want := range []string{"or", "be", "to"} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop() error = %v", err)
		}
		if got != want {
			t.Errorf("Pop() = %q, want %q", got, want)
		}
	}
	if !s.IsEmpty() {
		t.Error("stack should be empty")
	}
}

func TestUnderflow(t *testing.T) {
	tests := []struct {
		name string
		op   func(s *Linked[int]) (int, error)
	}{
		{"pop", (*Linked[int]).Pop},
		{"peek", (*Linked[int]).Peek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[int]()
			got, err := tt.op(s)
			if !errors.Is(err, ErrUnderflow) {
				t.Errorf("err = %v, want ErrUnderflow", err)
			}
			if got != 0 {
				t.Errorf("got = %d, want zero value", got)
			}
		})
	}
}

func TestPeek(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	if got, _ := s.Peek(); got != 2 {
		t.Errorf("Peek() = %d, want 2", got)
	}
	if s.Size() != 2 {
		t.Errorf("Size() = %d after Peek, want 2", s.Size())
	}
}

// =============================================================================
// Rendering Tests
// =============================================================================

func TestAllAndString(t *testing.T) {
	s := New[int]()
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("All() = %v, want [3 2 1]", got)
	}
	if got := s.String(); got != "3 2 1 " {
		t.Errorf("String() = %q, want %q", got, "3 2 1 ")
	}
	if got := New[int]().String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
}
