package clock

import (
	"math"
	"time"
)

// Timer accounts the time a player spends thinking against its budget.
type Timer interface {
	// Track starts charging elapsed time until the returned stop is called:
	//
	//	defer timer.Track()()
	Track() (stop func())
	Remaining() time.Duration
}

type Option func(s *Stopwatch)

// WithNow replaces the wall clock, mostly for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Stopwatch) {
		if now != nil {
			s.now = now
		}
	}
}

// Stopwatch charges tracked intervals against a fixed limit. Nested Track
// calls are charged once.
type Stopwatch struct {
	limit   time.Duration
	used    time.Duration
	depth   int
	started time.Time
	now     func() time.Time
}

func NewStopwatch(limit time.Duration, options ...Option) *Stopwatch {
	s := &Stopwatch{limit: limit, now: time.Now}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Stopwatch) Track() func() {
	if s.depth == 0 {
		s.started = s.now()
	}
	s.depth++
	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		s.depth--
		if s.depth == 0 {
			s.used += s.now().Sub(s.started)
		}
	}
}

// Remaining includes the interval currently being tracked.
func (s *Stopwatch) Remaining() time.Duration {
	used := s.used
	if s.depth > 0 {
		used += s.now().Sub(s.started)
	}
	return s.limit - used
}

func (s *Stopwatch) Used() time.Duration {
	return s.limit - s.Remaining()
}

type unlimited struct{}

// Unlimited never runs out of time.
func Unlimited() Timer {
	return unlimited{}
}

func (unlimited) Track() func()            { return func() {} }
func (unlimited) Remaining() time.Duration { return math.MaxInt64 }
