package clocks

import (
	"sync"
	"time"

	"github.com/reusee/dscope"
)

// Manual is a hand-advanced clock for tests. Idle advances it instead of
// sleeping, so timer-driven code runs instantly.
type Manual struct {
	sync.Mutex
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{
		now: start,
	}
}

func (m *Manual) Now() time.Time {
	m.Lock()
	defer m.Unlock()
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	m.Lock()
	defer m.Unlock()
	m.now = m.now.Add(d)
}

type ModuleManual struct {
	dscope.Module
	Clock *Manual
}

func Fixed(clock *Manual) ModuleManual {
	return ModuleManual{
		Clock: clock,
	}
}

func (m ModuleManual) Now() Now {
	return m.Clock.Now
}

func (m ModuleManual) Idle() Idle {
	return m.Clock.Advance
}
