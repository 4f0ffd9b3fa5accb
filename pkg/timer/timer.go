package timer

import (
	"sync"
	"time"
)

// Pacer releases callers at most once per step.
// A zero or negative step never blocks.
type Pacer struct {
	step   time.Duration
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func NewPacer(step time.Duration) *Pacer {
	p := &Pacer{
		step: step,
		done: make(chan struct{}),
	}
	if step > 0 {
		p.ticker = time.NewTicker(step)
	}
	return p
}

// Wait blocks until the next tick. It returns false once the pacer is stopped.
func (p *Pacer) Wait() bool {
	if p.ticker == nil {
		select {
		case <-p.done:
			return false
		default:
			return true
		}
	}

	select {
	case <-p.ticker.C:
		return true
	case <-p.done:
		return false
	}
}

func (p *Pacer) Step() time.Duration {
	return p.step
}

// Stop releases pending and future waiters. Safe to call more than once.
func (p *Pacer) Stop() {
	p.once.Do(func() {
		if p.ticker != nil {
			p.ticker.Stop()
		}
		close(p.done)
	})
}
