// Package politeness bounds the crawl request rate with randomized pauses
// between consecutive fetches. The pause is policy, not correctness: tests
// disable it by configuring zero bounds.
package politeness

import (
	"context"
	"math/rand/v2"
	"time"
)

// Sleeper waits a uniformly distributed duration between Min and Max.
type Sleeper struct {
	min time.Duration
	max time.Duration
}

// New builds a Sleeper. When max <= 0 every Wait returns immediately.
func New(min, max time.Duration) *Sleeper {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return &Sleeper{min: min, max: max}
}

// Wait blocks for one randomized pause or until the context is canceled.
func (s *Sleeper) Wait(ctx context.Context) error {
	if s == nil || s.max <= 0 {
		return ctx.Err()
	}

	d := s.min
	if spread := s.max - s.min; spread > 0 {
		d += time.Duration(rand.Int64N(int64(spread) + 1))
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
