// Package timertest provides a manual scheduler for driving timers in tests.
package timertest

import (
	"sort"
	"sync"
	"time"

	"github.com/benjamonnguyen/pomomo-tui/timer"
)

// Scheduler fires callbacks only when Advance moves its clock past their
// deadline. Callbacks run synchronously on the caller's goroutine.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	entries []*entry
}

type entry struct {
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
	s       *Scheduler
}

func New() *Scheduler {
	return &Scheduler{}
}

var _ timer.Scheduler = (*Scheduler)(nil)

func (s *Scheduler) AfterFunc(d time.Duration, f func()) timer.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e := &entry{at: s.now + d, seq: s.seq, f: f, s: s}
	s.entries = append(s.entries, e)
	return e
}

func (e *entry) Stop() bool {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.stopped || e.fired {
		return false
	}
	e.stopped = true
	e.s.removeLocked(e)
	return true
}

// Advance moves the clock forward by d, firing every callback that comes due
// in deadline order, including ones scheduled by earlier callbacks.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		next := s.nextLocked(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		s.removeLocked(next)
		s.mu.Unlock()
		next.f()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Pending is the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Now is the elapsed manual time.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *Scheduler) nextLocked(target time.Duration) *entry {
	sort.Slice(s.entries, func(i, j int) bool {
		if s.entries[i].at == s.entries[j].at {
			return s.entries[i].seq < s.entries[j].seq
		}
		return s.entries[i].at < s.entries[j].at
	})
	if len(s.entries) == 0 || s.entries[0].at > target {
		return nil
	}
	return s.entries[0]
}

func (s *Scheduler) removeLocked(e *entry) {
	for i, x := range s.entries {
		if x == e {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
