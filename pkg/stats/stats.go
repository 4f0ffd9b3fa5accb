package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// ErrInvalidRange is returned when a [lo, hi) sub-range does not fit the data.
var ErrInvalidRange = errors.New("invalid range")

// Max returns the largest value, or -Inf for empty data.
func Max(data []float64) float64 {
	v, err := mstats.Max(data)
	if err != nil {
		return math.Inf(-1)
	}
	return v
}

// Min returns the smallest value, or +Inf for empty data.
func Min(data []float64) float64 {
	v, err := mstats.Min(data)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// Sum returns the sum of the data (0 for empty data).
func Sum(data []float64) float64 {
	v, err := mstats.Sum(data)
	if err != nil {
		return 0
	}
	return v
}

// Mean returns the arithmetic mean, or NaN for empty data.
func Mean(data []float64) float64 {
	v, err := mstats.Mean(data)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Var returns the sample variance, or NaN for fewer than two values.
func Var(data []float64) float64 {
	if len(data) < 2 {
		return math.NaN()
	}
	v, err := mstats.SampleVariance(data)
	if err != nil {
		return math.NaN()
	}
	return v
}

// VarP returns the population variance, or NaN for empty data.
func VarP(data []float64) float64 {
	v, err := mstats.PopulationVariance(data)
	if err != nil {
		return math.NaN()
	}
	return v
}

// StdDev returns the sample standard deviation.
func StdDev(data []float64) float64 {
	return math.Sqrt(Var(data))
}

// StdDevP returns the population standard deviation.
func StdDevP(data []float64) float64 {
	return math.Sqrt(VarP(data))
}

// Percentile returns the p-th percentile (0 < p <= 100), or NaN when undefined.
func Percentile(data []float64, p float64) float64 {
	v, err := mstats.Percentile(data, p)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Range returns data[lo:hi] after checking the bounds.
func Range(data []float64, lo, hi int) ([]float64, error) {
	if lo < 0 || hi > len(data) || lo > hi {
		return nil, errors.Wrapf(ErrInvalidRange, "[%d, %d) of %d values", lo, hi, len(data))
	}
	return data[lo:hi], nil
}

// MeanRange returns the mean of data[lo:hi].
func MeanRange(data []float64, lo, hi int) (float64, error) {
	sub, err := Range(data, lo, hi)
	if err != nil {
		return math.NaN(), err
	}
	return Mean(sub), nil
}

// VarRange returns the sample variance of data[lo:hi].
func VarRange(data []float64, lo, hi int) (float64, error) {
	sub, err := Range(data, lo, hi)
	if err != nil {
		return math.NaN(), err
	}
	return Var(sub), nil
}

// VarPRange returns the population variance of data[lo:hi].
func VarPRange(data []float64, lo, hi int) (float64, error) {
	sub, err := Range(data, lo, hi)
	if err != nil {
		return math.NaN(), err
	}
	return VarP(sub), nil
}
