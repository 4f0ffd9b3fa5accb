package stats

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrOutOfRange is returned when a data point falls outside the histogram buckets.
var ErrOutOfRange = errors.New("data point out of range")

// Histogram counts integer data points in buckets [0, n).
// It is NOT thread-safe.
type Histogram struct {
	freq  []int64
	total int64
	max   int64 // largest bucket count, for scaling
}

// NewHistogram creates a histogram with n buckets (at least one).
func NewHistogram(n int) *Histogram {
	if n < 1 {
		n = 1
	}
	return &Histogram{freq: make([]int64, n)}
}

// Add counts one data point in bucket i.
func (h *Histogram) Add(i int) error {
	if i < 0 || i >= len(h.freq) {
		return errors.Wrapf(ErrOutOfRange, "bucket %d of %d", i, len(h.freq))
	}
	h.freq[i]++
	h.total++
	if h.freq[i] > h.max {
		h.max = h.freq[i]
	}
	return nil
}

// Clamp maps v into the valid bucket range.
func (h *Histogram) Clamp(v int) int {
	return max(0, min(v, len(h.freq)-1))
}

// Len returns the number of buckets.
func (h *Histogram) Len() int { return len(h.freq) }

// Count returns the count in bucket i (0 when i is out of range).
func (h *Histogram) Count(i int) int64 {
	if i < 0 || i >= len(h.freq) {
		return 0
	}
	return h.freq[i]
}

// Total returns the number of recorded data points.
func (h *Histogram) Total() int64 { return h.total }

// Max returns the largest bucket count.
func (h *Histogram) Max() int64 { return h.max }

// Buckets returns a copy of the bucket counts.
func (h *Histogram) Buckets() []int64 { return slices.Clone(h.freq) }

// Clone returns an independent copy.
func (h *Histogram) Clone() *Histogram {
	return &Histogram{freq: slices.Clone(h.freq), total: h.total, max: h.max}
}
