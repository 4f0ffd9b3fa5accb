package stats

import "math"

// Running accumulates count, mean and variance of a stream in O(1) memory
// (Welford's method). The zero value is ready to use.
type Running struct {
	n    int64
	mean float64
	m2   float64
	min  float64
	max  float64
	sum  float64
}

// Add records x.
func (r *Running) Add(x float64) {
	r.n++
	if r.n == 1 {
		r.min, r.max = x, x
	} else {
		r.min = math.Min(r.min, x)
		r.max = math.Max(r.max, x)
	}
	r.sum += x
	delta := x - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (x - r.mean)
}

// Count returns the number of recorded values.
func (r *Running) Count() int64 { return r.n }

// Sum returns the total of recorded values.
func (r *Running) Sum() float64 { return r.sum }

// Mean returns the running mean, or 0 before the first value.
func (r *Running) Mean() float64 {
	if r.n == 0 {
		return 0
	}
	return r.sum / float64(r.n)
}

// Var returns the sample variance, or NaN for fewer than two values.
func (r *Running) Var() float64 {
	if r.n < 2 {
		return math.NaN()
	}
	return r.m2 / float64(r.n-1)
}

// StdDev returns the sample standard deviation.
func (r *Running) StdDev() float64 { return math.Sqrt(r.Var()) }

// Min returns the smallest value, or +Inf before the first value.
func (r *Running) Min() float64 {
	if r.n == 0 {
		return math.Inf(1)
	}
	return r.min
}

// Max returns the largest value, or -Inf before the first value.
func (r *Running) Max() float64 {
	if r.n == 0 {
		return math.Inf(-1)
	}
	return r.max
}
