// Package loop runs the fixed-rate frame loop shared by every frontend.
package loop

import (
	"context"
	"errors"
	"time"
)

// ErrStop ends Run without an error when returned from a tick.
var ErrStop = errors.New("loop: stop")

// Scheduler calls a tick function at a fixed interval. Tick n is due at
// start + n*Interval; a late tick is followed immediately by the next one,
// so the long-run rate stays fixed.
type Scheduler struct {
	Interval time.Duration
	Now      func() time.Time
	Sleep    func(ctx context.Context, d time.Duration) error
}

// New creates a scheduler on the wall clock.
func New(interval time.Duration) *Scheduler {
	return &Scheduler{
		Interval: interval,
		Now:      time.Now,
		Sleep:    sleep,
	}
}

// Run blocks, calling tick until it returns an error or ctx is done.
// ErrStop yields nil; cancellation yields ctx.Err().
func (s *Scheduler) Run(ctx context.Context, tick func() error) error {
	start := s.Now()
	for n := int64(1); ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := tick(); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		next := start.Add(time.Duration(n) * s.Interval)
		if wait := next.Sub(s.Now()); wait > 0 {
			if err := s.Sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
