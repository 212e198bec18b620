package game

import (
	"context"
	"time"
)

// Scheduler drives a frame callback at a fixed interval for frontends that
// have no refresh loop of their own.
type Scheduler struct {
	Interval time.Duration
}

// NewScheduler creates a scheduler ticking at the given rate
func NewScheduler(fps int) *Scheduler {
	if fps <= 0 {
		fps = 60
	}
	return &Scheduler{Interval: time.Second / time.Duration(fps)}
}

// Run calls tick once per interval until ctx is cancelled or tick returns
// false. No tick starts after Run returns.
func (s *Scheduler) Run(ctx context.Context, tick func() bool) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Cancellation wins over a tick that raced it
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !tick() {
				return nil
			}
		}
	}
}
