// Package timer implements the tick-driven deskset utilities: a Countdown
// that runs a configured duration down to zero and a Stopwatch that counts
// upward and records laps.
//
// Both share a lifecycle — idle, running, paused, stopped — and both commit
// a fresh snapshot through the observe container on every tick and every
// transition. Ticks measure the real time elapsed since the previous tick
// rather than assuming a fixed decrement, so scheduling jitter never skews
// the total. The ticker handle is owned by the instance and released on
// every exit path from the running state; a tick that races a lifecycle
// call is discarded, so no commit fires after Pause, Stop, or Reset
// returns.
//
// The Clock interface decouples the tick source from wall time; tests
// substitute a manual clock and drive ticks explicitly.
package timer
