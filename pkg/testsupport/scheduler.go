package testsupport

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a deterministic scheduler for tests. Callbacks run only
// when Advance or FireAll is called, on the calling goroutine.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	due     time.Duration
	seq     int
	delay   time.Duration
	fn      func()
	stopped bool
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc records fn to run once the virtual clock passes d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	timer := &manualTimer{due: s.now + d, seq: s.seq, delay: d, fn: fn}
	s.pending = append(s.pending, timer)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if timer.stopped {
			return false
		}
		timer.stopped = true
		s.removeLocked(timer)
		return true
	}
}

// Advance moves the virtual clock forward and runs every callback that
// became due, in due order.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.now += d
	due := s.takeLocked(func(t *manualTimer) bool { return t.due <= s.now })
	s.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
	return len(due)
}

// FireAll runs every pending callback regardless of its delay.
func (s *ManualScheduler) FireAll() int {
	s.mu.Lock()
	due := s.takeLocked(func(*manualTimer) bool { return true })
	s.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
	return len(due)
}

// Pending reports the number of scheduled, unfired, unstopped callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Delays returns the delays of pending callbacks in scheduling order.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, 0, len(s.pending))
	for _, timer := range s.pending {
		out = append(out, timer.delay)
	}
	return out
}

func (s *ManualScheduler) takeLocked(match func(*manualTimer) bool) []*manualTimer {
	var due, keep []*manualTimer
	for _, timer := range s.pending {
		if match(timer) {
			timer.stopped = true
			due = append(due, timer)
			continue
		}
		keep = append(keep, timer)
	}
	s.pending = keep
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due
}

func (s *ManualScheduler) removeLocked(target *manualTimer) {
	for i, timer := range s.pending {
		if timer == target {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
