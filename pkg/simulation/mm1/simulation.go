package mm1

import (
	"context"
	"math"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/queuesim/pkg/datastructs/queue"
	"github.com/huynhanx03/queuesim/pkg/stats"
)

// Simulation is a single-server queue driven by two event clocks.
// Poisson arrivals (rate lambda) join a FIFO line; one server completes
// service at rate mu. The earliest pending event wins, ties go to the arrival.
//
// It is NOT thread-safe; one goroutine owns a Simulation.
type Simulation struct {
	cfg     Config
	sampler Sampler
	logger  *zap.Logger

	line          *queue.Linked[float64] // arrival times of waiting and in-service customers
	nextArrival   float64
	nextDeparture float64 // +Inf while the server is idle
	serviceStart  float64 // when the head customer entered service
	clock         float64

	waits  stats.Running
	delays stats.Running
	hist   *stats.Histogram
	recent *queue.Linked[float64]

	observers []Observer
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithObserver registers o to be notified after each departure.
func WithObserver(o Observer) Option {
	return func(s *Simulation) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// New validates cfg and schedules the first arrival.
func New(cfg Config, sampler Sampler, opts ...Option) (*Simulation, error) {
	if sampler == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "nil sampler")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:           cfg,
		sampler:       sampler,
		logger:        zap.NewNop(),
		line:          queue.New[float64](),
		nextDeparture: math.Inf(1),
		hist:          stats.NewHistogram(cfg.MaxWait + 1),
		recent:        queue.New[float64](),
	}
	for _, opt := range opts {
		opt(s)
	}

	first, err := sampler.Exp(cfg.ArrivalRate)
	if err != nil {
		return nil, errors.Wrap(err, "sample first arrival")
	}
	s.nextArrival = first

	if !cfg.Stable() {
		s.logger.Warn("arrival rate is not below service rate, queue will grow without bound",
			zap.Float64("lambda", cfg.ArrivalRate),
			zap.Float64("mu", cfg.ServiceRate),
		)
	}
	s.logger.Debug("simulation initialized",
		zap.Float64("lambda", cfg.ArrivalRate),
		zap.Float64("mu", cfg.ServiceRate),
		zap.Float64("first_arrival", first),
	)
	return s, nil
}

// Step processes the next event.
func (s *Simulation) Step() (Event, error) {
	if s.nextArrival <= s.nextDeparture {
		return s.arrive()
	}
	return s.depart()
}

// Run steps until departures more customers have been served (0 means no
// limit) or ctx is done.
func (s *Simulation) Run(ctx context.Context, departures int64) error {
	target := s.waits.Count() + departures
	for departures == 0 || s.waits.Count() < target {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) arrive() (Event, error) {
	now := s.nextArrival
	idle := s.line.IsEmpty()

	// Sample before mutating so a failed draw leaves the state untouched.
	var service float64
	if idle {
		v, err := s.sampler.Exp(s.cfg.ServiceRate)
		if err != nil {
			return Event{}, errors.Wrap(err, "sample service time")
		}
		service = v
	}
	gap, err := s.sampler.Exp(s.cfg.ArrivalRate)
	if err != nil {
		return Event{}, errors.Wrap(err, "sample interarrival time")
	}

	s.clock = now
	if idle {
		s.nextDeparture = now + service
		s.serviceStart = now
	}
	s.line.Enqueue(now)
	s.nextArrival += gap

	return Event{Kind: Arrival, Time: now}, nil
}

func (s *Simulation) depart() (Event, error) {
	now := s.nextDeparture

	var service float64
	if s.line.Size() > 1 {
		v, err := s.sampler.Exp(s.cfg.ServiceRate)
		if err != nil {
			return Event{}, errors.Wrap(err, "sample service time")
		}
		service = v
	}

	arrived, err := s.line.Dequeue()
	if err != nil {
		return Event{}, errors.Wrap(ErrInvariant, err.Error())
	}

	s.clock = now
	wait := now - arrived
	s.record(wait, s.serviceStart-arrived)

	if s.line.IsEmpty() {
		s.nextDeparture = math.Inf(1)
	} else {
		s.nextDeparture = now + service
		s.serviceStart = now
	}

	if len(s.observers) > 0 {
		snap := s.Snapshot()
		for _, o := range s.observers {
			o.OnDeparture(snap)
		}
	}

	return Event{Kind: Departure, Time: now, Wait: wait}, nil
}

func (s *Simulation) record(wait, delay float64) {
	s.waits.Add(wait)
	s.delays.Add(delay)

	// Bucket is always in range after Clamp.
	_ = s.hist.Add(s.hist.Clamp(int(math.Round(wait))))

	s.recent.Enqueue(wait)
	if s.recent.Size() > s.cfg.Window {
		_, _ = s.recent.Dequeue()
	}
}

// CheckInvariant reports ErrInvariant when a departure is pending with an
// empty line, or the line is non-empty with no departure pending.
func (s *Simulation) CheckInvariant() error {
	idle := math.IsInf(s.nextDeparture, 1)
	if idle != s.line.IsEmpty() {
		return errors.Wrapf(ErrInvariant, "next departure %v with %d in line", s.nextDeparture, s.line.Size())
	}
	return nil
}

// Config returns the validated configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Clock returns the time of the last processed event.
func (s *Simulation) Clock() float64 { return s.clock }

// NextArrival returns the time of the next arrival.
func (s *Simulation) NextArrival() float64 { return s.nextArrival }

// NextDeparture returns the time of the next departure, +Inf when idle.
func (s *Simulation) NextDeparture() float64 { return s.nextDeparture }

// QueueLen returns the number of customers waiting or in service.
func (s *Simulation) QueueLen() int { return s.line.Size() }

// Served returns the number of departed customers.
func (s *Simulation) Served() int64 { return s.waits.Count() }

// TotalWait returns the summed time in system of departed customers.
func (s *Simulation) TotalWait() float64 { return s.waits.Sum() }

// AverageWait returns total wait / served, 0 before the first departure.
func (s *Simulation) AverageWait() float64 { return s.waits.Mean() }

// AverageDelay returns the mean time spent waiting before service.
func (s *Simulation) AverageDelay() float64 { return s.delays.Mean() }

// Snapshot copies the current statistics.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Clock:        s.clock,
		Served:       s.waits.Count(),
		QueueLen:     s.line.Size(),
		AverageWait:  s.waits.Mean(),
		AverageDelay: s.delays.Mean(),
		Histogram:    s.hist.Clone(),
		RecentP50:    math.NaN(),
		RecentP95:    math.NaN(),
	}
	if snap.Served > 0 {
		snap.LongestWait = s.waits.Max()
	}
	if !s.recent.IsEmpty() {
		window := slices.Collect(s.recent.All())
		snap.RecentP50 = stats.Percentile(window, 50)
		snap.RecentP95 = stats.Percentile(window, 95)
	}
	return snap
}
