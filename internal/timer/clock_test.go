package timer

import (
	"time"
)

// manualClock drives ticks explicitly so timer tests are deterministic.
// Each tick advances the clock and hands the new time to the run loop,
// synchronously from the test's point of view once the resulting commit is
// observed via a subscriber channel.
type manualClock struct {
	now time.Time
	tk  *manualTicker
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Unix(1000, 0)}
}

func (m *manualClock) Now() time.Time { return m.now }

func (m *manualClock) NewTicker(d time.Duration) Ticker {
	m.tk = &manualTicker{c: make(chan time.Time)}
	return m.tk
}

// tick moves the clock forward by d and delivers the tick to the run loop.
// Callers must drain the resulting commit from their subscriber channel
// before the next lifecycle call to keep ordering deterministic.
func (m *manualClock) tick(d time.Duration) {
	m.now = m.now.Add(d)
	m.tk.c <- m.now
}

type manualTicker struct {
	c chan time.Time
}

func (t *manualTicker) C() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()               {}
