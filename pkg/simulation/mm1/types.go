package mm1

import (
	"github.com/huynhanx03/queuesim/pkg/stats"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is returned for non-positive or non-finite rates.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvariant is returned when next-departure finiteness and queue emptiness disagree.
	ErrInvariant = errors.New("simulation invariant violated")

	// ErrUnstable is returned by Predict when lambda >= mu.
	ErrUnstable = errors.New("unstable queue: arrival rate >= service rate")
)

// Sampler draws exponential variates with mean 1/rate.
type Sampler interface {
	Exp(rate float64) (float64, error)
}

// Observer is notified after every departure.
type Observer interface {
	OnDeparture(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// OnDeparture calls f(s).
func (f ObserverFunc) OnDeparture(s Snapshot) { f(s) }

// Kind is the type of a processed event.
type Kind uint8

const (
	Arrival Kind = iota + 1
	Departure
)

func (k Kind) String() string {
	switch k {
	case Arrival:
		return "arrival"
	case Departure:
		return "departure"
	default:
		return "unknown"
	}
}

// Event describes one processed simulation step.
type Event struct {
	Kind Kind
	Time float64
	Wait float64 // sojourn time of the departing customer; zero for arrivals
}

// Snapshot is a point-in-time copy of the simulation statistics.
type Snapshot struct {
	Clock        float64
	Served       int64
	QueueLen     int
	AverageWait  float64 // mean time in system
	AverageDelay float64 // mean time waiting before service
	LongestWait  float64
	RecentP50    float64
	RecentP95    float64
	Histogram    *stats.Histogram
}
