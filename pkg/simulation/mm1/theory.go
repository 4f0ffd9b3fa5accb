package mm1

import (
	"math"

	"github.com/pkg/errors"
)

// Theory holds the closed-form steady-state M/M/1 measures.
type Theory struct {
	Utilization float64 // rho = lambda / mu
	Sojourn     float64 // W  = 1 / (mu - lambda)
	Delay       float64 // Wq = lambda / (mu (mu - lambda))
	InSystem    float64 // L  = rho / (1 - rho)
	InQueue     float64 // Lq = rho^2 / (1 - rho)
}

// Predict returns the steady-state measures for lambda and mu.
func Predict(lambda, mu float64) (Theory, error) {
	cfg := Config{ArrivalRate: lambda, ServiceRate: mu}
	if err := cfg.Validate(); err != nil {
		return Theory{}, err
	}
	if !cfg.Stable() {
		return Theory{Utilization: lambda / mu, Sojourn: math.Inf(1), Delay: math.Inf(1),
			InSystem: math.Inf(1), InQueue: math.Inf(1)}, errors.WithStack(ErrUnstable)
	}

	rho := lambda / mu
	return Theory{
		Utilization: rho,
		Sojourn:     1 / (mu - lambda),
		Delay:       lambda / (mu * (mu - lambda)),
		InSystem:    rho / (1 - rho),
		InQueue:     rho * rho / (1 - rho),
	}, nil
}
