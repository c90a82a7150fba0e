package timer

import (
	"testing"
	"time"
)

func newTestCountdown(initial time.Duration) (*Countdown, *manualClock, chan CountdownState) {
	clock := newManualClock()
	cd := NewCountdown(initial, Options{Tick: 100 * time.Millisecond, Clock: clock})
	states := make(chan CountdownState, 64)
	cd.Subscribe(func(s CountdownState) { states <- s })
	return cd, clock, states
}

func TestCountdownInitialState(t *testing.T) {
	cd, _, _ := newTestCountdown(3 * time.Second)
	s := cd.State()
	if s.Started || s.Paused {
		t.Fatalf("new countdown Started=%v Paused=%v, want idle", s.Started, s.Paused)
	}
	if s.Remaining != 3*time.Second {
		t.Fatalf("Remaining = %v, want 3s", s.Remaining)
	}
	if s.Display != "00:00:03" {
		t.Fatalf("Display = %q, want %q", s.Display, "00:00:03")
	}
}

func TestCountdownStartCommitsRunningState(t *testing.T) {
	cd, _, states := newTestCountdown(3 * time.Second)
	cd.Start()
	s := <-states
	if !s.Started || s.Paused {
		t.Fatalf("Started=%v Paused=%v, want running", s.Started, s.Paused)
	}
	if s.Remaining != 3*time.Second {
		t.Fatalf("Remaining = %v, want 3s", s.Remaining)
	}
}

func TestCountdownTickSubtractsElapsedWallTime(t *testing.T) {
	cd, clock, states := newTestCountdown(3 * time.Second)
	cd.Start()
	<-states

	// Jittered cadence: the decrement follows real elapsed time, not the
	// configured interval.
	clock.tick(150 * time.Millisecond)
	s := <-states
	if s.Remaining != 2850*time.Millisecond {
		t.Fatalf("Remaining = %v, want 2.85s", s.Remaining)
	}
	clock.tick(50 * time.Millisecond)
	s = <-states
	if s.Remaining != 2800*time.Millisecond {
		t.Fatalf("Remaining = %v, want 2.8s", s.Remaining)
	}
	if !s.Started {
		t.Fatal("countdown stopped early")
	}
}

func TestCountdownRemainingMonotonicNonIncreasing(t *testing.T) {
	cd, clock, states := newTestCountdown(time.Second)
	cd.Start()
	prev := (<-states).Remaining

	for i := 0; i < 12; i++ {
		clock.tick(100 * time.Millisecond)
		s := <-states
		if s.Remaining > prev {
			t.Fatalf("Remaining increased from %v to %v", prev, s.Remaining)
		}
		if s.Remaining < 0 {
			t.Fatalf("Remaining went negative: %v", s.Remaining)
		}
		prev = s.Remaining
		if !s.Started {
			if s.Remaining != 0 {
				t.Fatalf("stopped with Remaining = %v, want 0", s.Remaining)
			}
			return
		}
	}
	t.Fatalf("countdown never expired; Remaining = %v", prev)
}

func TestCountdownExpiryClampsAndStops(t *testing.T) {
	cd, clock, states := newTestCountdown(300 * time.Millisecond)
	cd.Start()
	<-states

	clock.tick(100 * time.Millisecond)
	<-states
	clock.tick(100 * time.Millisecond)
	<-states
	clock.tick(150 * time.Millisecond) // overshoots the remaining 100ms
	s := <-states
	if s.Remaining != 0 {
		t.Fatalf("Remaining = %v, want 0 (clamped)", s.Remaining)
	}
	if s.Started || s.Paused {
		t.Fatalf("Started=%v Paused=%v after expiry, want stopped", s.Started, s.Paused)
	}
	if s.Display != "00:00:00" {
		t.Fatalf("Display = %q, want %q", s.Display, "00:00:00")
	}

	// Expired countdown stays put until Reset.
	cd.Start()
	if len(states) != 0 {
		t.Fatal("Start after expiry committed a state, want no-op")
	}
}

func TestCountdownPausePreservesRemaining(t *testing.T) {
	cd, clock, states := newTestCountdown(2 * time.Second)
	cd.Start()
	<-states
	clock.tick(500 * time.Millisecond)
	<-states

	cd.Pause()
	s := <-states
	if !s.Started || !s.Paused {
		t.Fatalf("Started=%v Paused=%v, want paused", s.Started, s.Paused)
	}
	if s.Remaining != 1500*time.Millisecond {
		t.Fatalf("Remaining = %v, want 1.5s", s.Remaining)
	}

	cd.Start() // resume
	s = <-states
	if !s.Started || s.Paused {
		t.Fatalf("resume Started=%v Paused=%v, want running", s.Started, s.Paused)
	}
	if s.Remaining != 1500*time.Millisecond {
		t.Fatalf("resume Remaining = %v, want 1.5s", s.Remaining)
	}
}

func TestCountdownStopKeepsRemaining(t *testing.T) {
	cd, clock, states := newTestCountdown(2 * time.Second)
	cd.Start()
	<-states
	clock.tick(400 * time.Millisecond)
	<-states

	cd.Stop()
	s := <-states
	if s.Started || s.Paused {
		t.Fatalf("Started=%v Paused=%v after Stop, want stopped", s.Started, s.Paused)
	}
	if s.Remaining != 1600*time.Millisecond {
		t.Fatalf("Remaining = %v, want 1.6s", s.Remaining)
	}
}

func TestCountdownResetRestoresInitial(t *testing.T) {
	cd, clock, states := newTestCountdown(2 * time.Second)
	cd.Start()
	<-states
	clock.tick(700 * time.Millisecond)
	<-states

	cd.Reset()
	s := <-states
	if s.Started || s.Paused {
		t.Fatalf("Started=%v Paused=%v after Reset, want idle", s.Started, s.Paused)
	}
	if s.Remaining != 2*time.Second {
		t.Fatalf("Remaining = %v, want 2s", s.Remaining)
	}
}

func TestCountdownLifecycleNoOps(t *testing.T) {
	cd, _, states := newTestCountdown(time.Second)

	cd.Pause()
	cd.Stop()
	if len(states) != 0 {
		t.Fatalf("Pause/Stop while idle committed %d states, want 0", len(states))
	}

	cd.Start()
	<-states
	cd.Start()
	if len(states) != 0 {
		t.Fatal("Start while running committed a state, want no-op")
	}
}

func TestCountdownNoCommitAfterPauseReturns(t *testing.T) {
	cd, clock, states := newTestCountdown(time.Second)
	cd.Start()
	<-states
	clock.tick(100 * time.Millisecond)
	<-states

	cd.Pause()
	<-states // paused state

	// The old run loop has been told to stop; no further tick can commit.
	if len(states) != 0 {
		t.Fatalf("%d stale commits after Pause", len(states))
	}
	if got := cd.State().Remaining; got != 900*time.Millisecond {
		t.Fatalf("Remaining = %v, want 900ms", got)
	}
}

func TestCountdownDisplayRoundsUp(t *testing.T) {
	cd, clock, states := newTestCountdown(3 * time.Second)
	cd.Start()
	<-states
	clock.tick(100 * time.Millisecond)
	s := <-states
	// 2.9s remaining still reads as three whole seconds.
	if s.Display != "00:00:03" {
		t.Fatalf("Display = %q, want %q", s.Display, "00:00:03")
	}
}

func TestCountdownNegativeInitialClampsToZero(t *testing.T) {
	cd := NewCountdown(-time.Second, Options{Clock: newManualClock()})
	if got := cd.State().Remaining; got != 0 {
		t.Fatalf("Remaining = %v, want 0", got)
	}
}
