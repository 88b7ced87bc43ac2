// Package loop drives a game at a fixed cadence.
package loop

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// maxBehindPeriods bounds how far the deadline may lag the clock before the
// scheduler gives up on the backlog and resyncs.
const maxBehindPeriods = 2

// Scheduler computes fixed-rate tick deadlines. Each tick moves the deadline
// forward by exactly one period, so a late tick is followed by a shorter wait
// rather than drifting.
type Scheduler struct {
	clock  core.Clock
	period time.Duration

	mu      sync.Mutex
	next    time.Time
	running bool
	ticks   uint64
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(clock core.Clock, period time.Duration) *Scheduler {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Scheduler{clock: clock, period: period}
}

// Period returns the tick period.
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// Start begins scheduling with the first tick one period from now. Calling
// Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.next = s.clock.Now().Add(s.period)
}

// Stop halts scheduling. Pending delays are discarded.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Restart stops and starts again, resetting the deadline.
func (s *Scheduler) Restart() {
	s.Stop()
	s.Start()
}

// Running reports whether ticks are being scheduled.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Ticks returns the number of ticks completed since creation.
func (s *Scheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// NextDelay returns how long to wait before the next tick, never negative.
func (s *Scheduler) NextDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return max(0, s.next.Sub(s.clock.Now()))
}

// Tick records a completed tick and advances the deadline by one period.
// When the deadline has fallen more than two periods behind the clock the
// backlog is dropped and the next tick is one period from now.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks++
	now := s.clock.Now()
	s.next = s.next.Add(s.period)
	if now.Sub(s.next) > maxBehindPeriods*s.period {
		s.next = now.Add(s.period)
	}
}
