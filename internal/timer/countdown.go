package timer

import (
	"sync"
	"time"

	"github.com/five82/deskset/internal/observe"
)

const defaultTick = 250 * time.Millisecond

// Options configure a Countdown or Stopwatch.
type Options struct {
	Tick  time.Duration // tick cadence; zero uses the 250ms default
	Clock Clock         // nil uses SystemClock
}

func (o Options) withDefaults() Options {
	if o.Tick <= 0 {
		o.Tick = defaultTick
	}
	if o.Clock == nil {
		o.Clock = SystemClock
	}
	return o
}

// CountdownState is the countdown snapshot. Paused implies Started;
// Remaining never goes below zero.
type CountdownState struct {
	Started   bool
	Paused    bool
	Remaining time.Duration
	Display   string
}

// Countdown counts a configured duration down to zero, committing a fresh
// snapshot on every tick and lifecycle transition. Reaching zero stops the
// ticker and commits a final stopped state.
type Countdown struct {
	value   *observe.Value[CountdownState]
	clock   Clock
	tick    time.Duration
	initial time.Duration

	mu       sync.Mutex
	ticker   Ticker
	done     chan struct{}
	lastTick time.Time
}

// NewCountdown returns an idle countdown holding initial.
func NewCountdown(initial time.Duration, opts Options) *Countdown {
	if initial < 0 {
		initial = 0
	}
	opts = opts.withDefaults()
	return &Countdown{
		value:   observe.New(countdownState(false, false, initial)),
		clock:   opts.Clock,
		tick:    opts.Tick,
		initial: initial,
	}
}

// State returns the current snapshot.
func (c *Countdown) State() CountdownState {
	return c.value.State()
}

// Subscribe registers fn to receive every committed snapshot: each tick and
// every lifecycle transition.
func (c *Countdown) Subscribe(fn func(CountdownState)) {
	c.value.Subscribe(fn)
}

// Start begins ticking from idle or stopped, or resumes from pause without
// resetting the remaining time. No-op while already running, and no-op once
// expired until Reset rearms the countdown.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.value.State()
	if cur.Started && !cur.Paused {
		return
	}
	if cur.Remaining <= 0 {
		return
	}
	c.startTicking()
	c.value.Commit(countdownState(true, false, cur.Remaining))
}

// Pause halts ticking and preserves the remaining time. No-op when not
// started.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.value.State()
	if !cur.Started || cur.Paused {
		return
	}
	c.stopTicking()
	c.value.Commit(countdownState(true, true, cur.Remaining))
}

// Stop halts ticking and leaves the remaining time untouched. No-op when
// not started.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.value.State()
	if !cur.Started {
		return
	}
	c.stopTicking()
	c.value.Commit(countdownState(false, false, cur.Remaining))
}

// Reset halts ticking and restores the configured initial duration. It does
// not auto-start.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTicking()
	c.value.Commit(countdownState(false, false, c.initial))
}

// startTicking replaces any stale ticker with a fresh one. Caller holds mu.
func (c *Countdown) startTicking() {
	c.stopTicking()
	c.lastTick = c.clock.Now()
	c.ticker = c.clock.NewTicker(c.tick)
	c.done = make(chan struct{})
	go c.run(c.ticker, c.done)
}

// stopTicking releases the ticker handle so no further tick commits.
// Caller holds mu.
func (c *Countdown) stopTicking() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}

func (c *Countdown) run(tk Ticker, done chan struct{}) {
	for {
		select {
		case now := <-tk.C():
			c.advance(tk, now)
		case <-done:
			return
		}
	}
}

// advance subtracts the wall-clock time elapsed since the previous tick, so
// scheduling jitter cannot skew the total. Hitting zero clamps, releases
// the ticker, and commits the final stopped state.
func (c *Countdown) advance(tk Ticker, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker != tk {
		return // tick raced a pause/stop/reset; discard
	}
	elapsed := now.Sub(c.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	c.lastTick = now

	remaining := c.value.State().Remaining - elapsed
	if remaining <= 0 {
		c.stopTicking()
		c.value.Commit(countdownState(false, false, 0))
		return
	}
	c.value.Commit(countdownState(true, false, remaining))
}

func countdownState(started, paused bool, remaining time.Duration) CountdownState {
	return CountdownState{
		Started:   started,
		Paused:    paused,
		Remaining: remaining,
		Display:   formatClock(ceilSecond(remaining)),
	}
}
