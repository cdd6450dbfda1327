package debounce

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	mu    sync.Mutex
	clock Clock
	calls []time.Time
}

func (r *recorder) action() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, r.clock.Now())
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newTestScheduler(t *testing.T) (*Scheduler, *FakeClock, *recorder) {
	t.Helper()
	clock := NewFakeClock(epoch)
	rec := &recorder{clock: clock}
	return New(500*time.Millisecond, rec.action, WithClock(clock)), clock, rec
}

func TestScheduler_CoalescesBurst(t *testing.T) {
	s, clock, rec := newTestScheduler(t)

	// 10 changes within 100ms
	for i := 0; i < 10; i++ {
		s.Notify()
		clock.Advance(10 * time.Millisecond)
	}
	last := s.LastNotify()

	clock.Advance(2 * time.Second)

	if rec.count() != 1 {
		t.Fatalf("Expected exactly 1 run, got %d", rec.count())
	}
	if elapsed := rec.calls[0].Sub(last); elapsed < 500*time.Millisecond {
		t.Errorf("Expected run >= 500ms after last change, got %v", elapsed)
	}
}

func TestScheduler_WaitsForQuietPeriod(t *testing.T) {
	s, clock, rec := newTestScheduler(t)

	s.Notify()
	clock.Advance(499 * time.Millisecond)
	if rec.count() != 0 {
		t.Fatalf("Expected no run before quiet period, got %d", rec.count())
	}

	clock.Advance(time.Millisecond)
	if rec.count() != 1 {
		t.Fatalf("Expected run at quiet period, got %d", rec.count())
	}
}

func TestScheduler_LongBurstNeverForcesIntermediateRun(t *testing.T) {
	s, clock, rec := newTestScheduler(t)

	// 10 seconds of typing, one change every 400ms
	for i := 0; i < 25; i++ {
		s.Notify()
		clock.Advance(400 * time.Millisecond)
	}
	if rec.count() != 0 {
		t.Fatalf("Expected no run during burst, got %d", rec.count())
	}

	clock.Advance(100 * time.Millisecond)
	if rec.count() != 1 {
		t.Errorf("Expected a single run after the burst, got %d", rec.count())
	}
}

func TestScheduler_SeparateBurstsRunSeparately(t *testing.T) {
	s, clock, rec := newTestScheduler(t)

	s.Notify()
	clock.Advance(time.Second)
	s.Notify()
	clock.Advance(time.Second)

	if rec.count() != 2 {
		t.Errorf("Expected 2 runs, got %d", rec.count())
	}
}

func TestScheduler_Cancel(t *testing.T) {
	s, clock, rec := newTestScheduler(t)

	if s.Cancel() {
		t.Error("Expected Cancel with nothing pending to return false")
	}

	s.Notify()
	if !s.Pending() {
		t.Fatal("Expected pending after Notify")
	}
	if !s.Cancel() {
		t.Error("Expected Cancel to report a pending run")
	}

	clock.Advance(time.Second)
	if rec.count() != 0 {
		t.Errorf("Expected no run after Cancel, got %d", rec.count())
	}
	if s.Pending() {
		t.Error("Expected nothing pending after Cancel")
	}
}

func TestScheduler_Flush(t *testing.T) {
	s, clock, rec := newTestScheduler(t)

	if s.Flush() {
		t.Error("Expected Flush with nothing pending to return false")
	}

	s.Notify()
	if !s.Flush() {
		t.Fatal("Expected Flush to run the pending action")
	}
	if rec.count() != 1 {
		t.Fatalf("Expected 1 run after Flush, got %d", rec.count())
	}

	clock.Advance(time.Second)
	if rec.count() != 1 {
		t.Errorf("Expected flushed timer not to run again, got %d", rec.count())
	}
}

func TestScheduler_StaleTimerIgnored(t *testing.T) {
	clock := NewFakeClock(epoch)
	rec := &recorder{clock: clock}
	s := New(500*time.Millisecond, rec.action, WithClock(clock))

	s.Notify()
	s.mu.Lock()
	staleGen := s.gen
	s.mu.Unlock()

	s.Notify()
	// a callback from the superseded timer that raced past Stop
	s.fire(staleGen)
	if rec.count() != 0 {
		t.Fatalf("Expected stale callback to be ignored, got %d runs", rec.count())
	}

	clock.Advance(time.Second)
	if rec.count() != 1 {
		t.Errorf("Expected 1 run from the live timer, got %d", rec.count())
	}
}

func TestScheduler_DefaultQuietPeriod(t *testing.T) {
	s := New(0, func() {})
	if s.QuietPeriod() != DefaultQuietPeriod {
		t.Errorf("Expected %v, got %v", DefaultQuietPeriod, s.QuietPeriod())
	}
}

func TestScheduler_SystemClock(t *testing.T) {
	done := make(chan struct{})
	s := New(10*time.Millisecond, func() { close(done) })

	s.Notify()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected action to run on the system clock")
	}
}

func TestFakeClock_PendingTimers(t *testing.T) {
	clock := NewFakeClock(epoch)
	timer := clock.AfterFunc(time.Second, func() {})
	clock.AfterFunc(2*time.Second, func() {})

	if n := clock.PendingTimers(); n != 2 {
		t.Fatalf("Expected 2 pending timers, got %d", n)
	}
	if !timer.Stop() {
		t.Error("Expected Stop to succeed on live timer")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to return false")
	}

	clock.Advance(3 * time.Second)
	if n := clock.PendingTimers(); n != 0 {
		t.Errorf("Expected 0 pending timers, got %d", n)
	}
	if !clock.Now().Equal(epoch.Add(3 * time.Second)) {
		t.Errorf("Expected clock at +3s, got %v", clock.Now())
	}
}
