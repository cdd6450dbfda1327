// Package debounce coalesces bursts of change notifications into a single
// action run after a quiet period.
//
// It is a pure debounce, not a throttle: a burst that never pauses for the
// quiet period never triggers an intermediate run.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the save delay used by editpad
const DefaultQuietPeriod = 500 * time.Millisecond

// Scheduler restarts a timer on every Notify and runs its action once the
// timer elapses without a further Notify
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	quiet  time.Duration
	action func()

	timer   Timer
	gen     uint64 // bumped on every Notify/Cancel; stale callbacks compare against it
	pending bool
	lastAt  time.Time
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock injects the clock, SystemClock by default
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// New creates a scheduler running action after quiet of inactivity.
// A non-positive quiet falls back to DefaultQuietPeriod.
func New(quiet time.Duration, action func(), opts ...Option) *Scheduler {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	s := &Scheduler{
		clock:  SystemClock{},
		quiet:  quiet,
		action: action,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Notify records a change and restarts the quiet period
func (s *Scheduler) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.pending = true
	s.lastAt = s.clock.Now()
	s.timer = s.clock.AfterFunc(s.quiet, func() { s.fire(gen) })
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.timer = nil
	action := s.action
	s.mu.Unlock()

	if action != nil {
		action()
	}
}

// Cancel drops a pending run. Reports whether one was pending.
func (s *Scheduler) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked()
}

func (s *Scheduler) cancelLocked() bool {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	was := s.pending
	s.pending = false
	return was
}

// Flush runs a pending action immediately on the calling goroutine
func (s *Scheduler) Flush() bool {
	s.mu.Lock()
	if !s.cancelLocked() {
		s.mu.Unlock()
		return false
	}
	action := s.action
	s.mu.Unlock()

	if action != nil {
		action()
	}
	return true
}

// Pending reports whether a run is scheduled
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// LastNotify returns the time of the most recent Notify
func (s *Scheduler) LastNotify() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAt
}

// QuietPeriod returns the configured delay
func (s *Scheduler) QuietPeriod() time.Duration {
	return s.quiet
}
