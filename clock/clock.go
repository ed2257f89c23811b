package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time to everything that stamps or compares times
type Clock interface {
	Now() time.Time
}

// Real is the wall clock, always in UTC
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Manual is a clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start.UTC()}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set jumps the clock to t
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t.UTC()
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// AddMinutes returns t shifted by n whole minutes
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// MinutesSince returns the whole minutes elapsed between t and the clock's now
func MinutesSince(c Clock, t time.Time) int {
	return int(c.Now().Sub(t) / time.Minute)
}
