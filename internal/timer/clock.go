package timer

import "time"

// Ticker delivers periodic ticks and can be stopped. It is satisfied by a
// thin wrapper over time.Ticker and by the manual ticker used in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock abstracts wall time so tests can drive ticks deterministically.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the Clock used outside tests.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (st systemTicker) C() <-chan time.Time { return st.t.C }
func (st systemTicker) Stop()               { st.t.Stop() }
