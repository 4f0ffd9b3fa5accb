package random

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned when a distribution parameter is out of its domain.
var ErrInvalidParameter = errors.New("invalid parameter")

// streamSalt decorrelates the second PCG word from the seed.
const streamSalt = 0x9e3779b97f4a7c15

const maxPoissonMean = 700

// Source draws samples from common distributions.
// It is NOT thread-safe; give each goroutine its own Source.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New creates a Source seeded deterministically with seed.
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^streamSalt)),
	}
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint64 { return s.seed }

// Uniform returns a float64 in [0, 1).
func (s *Source) Uniform() float64 { return s.rng.Float64() }

// UniformRange returns a float64 in [lo, hi).
func (s *Source) UniformRange(lo, hi float64) (float64, error) {
	if !(lo < hi) || math.IsInf(hi-lo, 0) {
		return 0, errors.Wrapf(ErrInvalidParameter, "uniform range [%v, %v)", lo, hi)
	}
	return lo + s.rng.Float64()*(hi-lo), nil
}

// UniformInt returns an int in [0, n).
func (s *Source) UniformInt(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "uniform int n = %d", n)
	}
	return s.rng.IntN(n), nil
}

// UniformIntRange returns an int in [lo, hi).
func (s *Source) UniformIntRange(lo, hi int) (int, error) {
	if hi <= lo || hi-lo <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "uniform int range [%d, %d)", lo, hi)
	}
	return lo + s.rng.IntN(hi-lo), nil
}

// Bernoulli returns true with probability p.
func (s *Source) Bernoulli(p float64) (bool, error) {
	if !(p >= 0 && p <= 1) {
		return false, errors.Wrapf(ErrInvalidParameter, "bernoulli p = %v", p)
	}
	return s.rng.Float64() < p, nil
}

// Gaussian returns a standard normal draw.
func (s *Source) Gaussian() float64 { return s.rng.NormFloat64() }

// GaussianWith returns a normal draw with mean mu and standard deviation sigma.
func (s *Source) GaussianWith(mu, sigma float64) float64 {
	return mu + sigma*s.rng.NormFloat64()
}

// Exp returns an exponential draw with the given rate (mean 1/rate).
func (s *Source) Exp(rate float64) (float64, error) {
	if !validRate(rate) {
		return 0, errors.Wrapf(ErrInvalidParameter, "exponential rate = %v", rate)
	}
	return -math.Log(1-s.rng.Float64()) / rate, nil
}

// Geometric returns the number of Bernoulli(p) trials up to and including the first success.
func (s *Source) Geometric(p float64) (int, error) {
	if !(p > 0 && p <= 1) {
		return 0, errors.Wrapf(ErrInvalidParameter, "geometric p = %v", p)
	}
	if p == 1 {
		return 1, nil
	}
	u := 1 - s.rng.Float64() // (0, 1]
	return int(math.Ceil(math.Log(u) / math.Log(1-p))), nil
}

// Poisson returns a Poisson draw with mean lambda.
func (s *Source) Poisson(lambda float64) (int, error) {
	if !validRate(lambda) || lambda > maxPoissonMean {
		return 0, errors.Wrapf(ErrInvalidParameter, "poisson lambda = %v", lambda)
	}
	// Knuth; exp(-lambda) underflows past maxPoissonMean.
	limit := math.Exp(-lambda)
	k, p := 0, 1.0
	for {
		k++
		p *= s.rng.Float64()
		if p < limit {
			return k - 1, nil
		}
	}
}

// Pareto returns a Pareto draw with shape alpha and scale 1. Support is [1, +Inf).
func (s *Source) Pareto(alpha float64) (float64, error) {
	if !validRate(alpha) {
		return 0, errors.Wrapf(ErrInvalidParameter, "pareto alpha = %v", alpha)
	}
	return math.Pow(1-s.rng.Float64(), -1/alpha), nil
}

// Cauchy returns a standard Cauchy draw.
func (s *Source) Cauchy() float64 {
	return math.Tan(math.Pi * (s.rng.Float64() - 0.5))
}

// Discrete returns index i with probability probs[i].
// The probabilities must be non-negative and sum to 1.
func (s *Source) Discrete(probs []float64) (int, error) {
	const epsilon = 1e-12
	if len(probs) == 0 {
		return 0, errors.Wrap(ErrInvalidParameter, "discrete: no probabilities")
	}
	sum := 0.0
	for i, p := range probs {
		if !(p >= 0) {
			return 0, errors.Wrapf(ErrInvalidParameter, "discrete: probs[%d] = %v", i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > epsilon {
		return 0, errors.Wrapf(ErrInvalidParameter, "discrete: probabilities sum to %v", sum)
	}

	r := s.rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return i, nil
		}
	}
	// Rounding left r above the last partial sum.
	for i := len(probs) - 1; i >= 0; i-- {
		if probs[i] > 0 {
			return i, nil
		}
	}
	return len(probs) - 1, nil
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Permutation returns a uniformly random permutation of [0, n).
func (s *Source) Permutation(n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "permutation n = %d", n)
	}
	return s.rng.Perm(n), nil
}

// PermutationK returns k distinct values drawn uniformly from [0, n).
func (s *Source) PermutationK(n, k int) ([]int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, errors.Wrapf(ErrInvalidParameter, "permutation n = %d, k = %d", n, k)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k], nil
}

func validRate(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
