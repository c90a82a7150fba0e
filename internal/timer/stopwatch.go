package timer

import (
	"sync"
	"time"

	"github.com/five82/deskset/internal/observe"
)

// Lap is a snapshot taken by Stopwatch.Lap: the split since the previous
// lap (or start) and the cumulative total, both pre-formatted.
type Lap struct {
	Split string
	Total string
}

// StopwatchState is the stopwatch snapshot. Elapsed only grows while
// running; Laps is append-only between resets.
type StopwatchState struct {
	Started bool
	Paused  bool
	Elapsed time.Duration
	Laps    []Lap
	Display string
}

// Stopwatch counts elapsed time upward with no terminal condition and
// records laps on demand while started.
type Stopwatch struct {
	value *observe.Value[StopwatchState]
	clock Clock
	tick  time.Duration

	mu       sync.Mutex
	ticker   Ticker
	done     chan struct{}
	lastTick time.Time
	lastLap  time.Duration // elapsed total at the previous lap
}

// NewStopwatch returns an idle stopwatch at zero.
func NewStopwatch(opts Options) *Stopwatch {
	opts = opts.withDefaults()
	return &Stopwatch{
		value: observe.New(stopwatchState(false, false, 0, nil)),
		clock: opts.Clock,
		tick:  opts.Tick,
	}
}

// State returns the current snapshot with a defensive copy of the laps.
func (s *Stopwatch) State() StopwatchState {
	snap := s.value.State()
	snap.Laps = cloneLaps(snap.Laps)
	return snap
}

// Subscribe registers fn to receive every committed snapshot.
func (s *Stopwatch) Subscribe(fn func(StopwatchState)) {
	s.value.Subscribe(fn)
}

// Start begins ticking from idle or stopped, or resumes from pause. No-op
// while already running.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.value.State()
	if cur.Started && !cur.Paused {
		return
	}
	s.startTicking()
	s.value.Commit(stopwatchState(true, false, cur.Elapsed, cur.Laps))
}

// Pause halts ticking and freezes the elapsed time. No-op when not started.
func (s *Stopwatch) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.value.State()
	if !cur.Started || cur.Paused {
		return
	}
	s.stopTicking()
	s.value.Commit(stopwatchState(true, true, cur.Elapsed, cur.Laps))
}

// Stop halts ticking and keeps the elapsed time and laps. No-op when not
// started.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.value.State()
	if !cur.Started {
		return
	}
	s.stopTicking()
	s.value.Commit(stopwatchState(false, false, cur.Elapsed, cur.Laps))
}

// Reset halts ticking, zeroes the elapsed time, and clears the laps.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTicking()
	s.lastLap = 0
	s.value.Commit(stopwatchState(false, false, 0, nil))
}

// Lap records the split since the previous lap (or start) and the running
// total. Valid only while started; paused still counts as started. Calling
// Lap when not started is a deliberate no-op so a display loop never has to
// guard the key binding.
func (s *Stopwatch) Lap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.value.State()
	if !cur.Started {
		return
	}
	split := cur.Elapsed - s.lastLap
	s.lastLap = cur.Elapsed

	laps := make([]Lap, len(cur.Laps)+1)
	copy(laps, cur.Laps)
	laps[len(cur.Laps)] = Lap{Split: formatClock(split), Total: formatClock(cur.Elapsed)}

	s.value.Commit(stopwatchState(cur.Started, cur.Paused, cur.Elapsed, laps))
}

// startTicking replaces any stale ticker with a fresh one. Caller holds mu.
func (s *Stopwatch) startTicking() {
	s.stopTicking()
	s.lastTick = s.clock.Now()
	s.ticker = s.clock.NewTicker(s.tick)
	s.done = make(chan struct{})
	go s.run(s.ticker, s.done)
}

// stopTicking releases the ticker handle so no further tick commits.
// Caller holds mu.
func (s *Stopwatch) stopTicking() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

func (s *Stopwatch) run(tk Ticker, done chan struct{}) {
	for {
		select {
		case now := <-tk.C():
			s.advance(tk, now)
		case <-done:
			return
		}
	}
}

// advance adds the wall-clock time elapsed since the previous tick.
func (s *Stopwatch) advance(tk Ticker, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != tk {
		return // tick raced a pause/stop/reset; discard
	}
	elapsed := now.Sub(s.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	s.lastTick = now

	cur := s.value.State()
	s.value.Commit(stopwatchState(true, false, cur.Elapsed+elapsed, cur.Laps))
}

func stopwatchState(started, paused bool, elapsed time.Duration, laps []Lap) StopwatchState {
	return StopwatchState{
		Started: started,
		Paused:  paused,
		Elapsed: elapsed,
		Laps:    laps,
		Display: formatClock(elapsed),
	}
}

func cloneLaps(laps []Lap) []Lap {
	if len(laps) == 0 {
		return nil
	}
	dup := make([]Lap, len(laps))
	copy(dup, laps)
	return dup
}
